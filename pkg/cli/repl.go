// pkg/cli/repl.go
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"sortedseq/pkg/sortedseq"
)

// REPL provides a Read-Eval-Print Loop for interactively exercising a
// sortedseq.List[int]. It exists to let a user poke at the container's
// behaviour (split/merge thresholds, rank queries, range iteration)
// without writing a Go program.
type REPL struct {
	seq *sortedseq.List[int]

	shell *Shell

	output    io.Writer
	errOutput io.Writer

	running       bool
	exitRequested bool
}

// NewREPL creates a new REPL reading from stdin.
func NewREPL(load int, output, errOutput io.Writer) (*REPL, error) {
	return NewREPLWithInput(load, os.Stdin, output, errOutput)
}

// NewREPLWithInput creates a new REPL with custom input/output
// streams, useful for testing or scripted operation.
func NewREPLWithInput(load int, input io.Reader, output, errOutput io.Writer) (*REPL, error) {
	seq, err := sortedseq.New[int](load)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	shell := NewShell(input, output, errOutput)
	shell.SetPrompt("sortedseq> ")
	shell.SetContinuePrompt("       ... ")

	return &REPL{
		seq:       seq,
		shell:     shell,
		output:    output,
		errOutput: errOutput,
	}, nil
}

// Run starts the REPL loop, reading and executing commands until EOF
// or .exit.
func (r *REPL) Run() {
	r.running = true
	r.exitRequested = false

	fmt.Fprintln(r.output, "sortedseq shell")
	fmt.Fprintln(r.output, "Enter \".help\" for usage hints.")

	for r.running && !r.exitRequested {
		line, eof := r.shell.ReadLine()
		line = strings.TrimSpace(line)

		if line == "" {
			if eof {
				fmt.Fprintln(r.output)
				break
			}
			continue
		}

		if strings.HasPrefix(line, ".") {
			r.handleDotCommand(line)
		} else {
			r.shell.AddHistory(line)
			if err := r.ExecuteCommand(line); err != nil {
				r.printError(err)
			}
		}

		if eof {
			break
		}
	}

	r.running = false
}

// ExecuteCommand parses and runs a single command line against the
// container, printing its result to output.
func (r *REPL) ExecuteCommand(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "add":
		v, err := parseArg(args, 0)
		if err != nil {
			return err
		}
		r.seq.Add(v)
		return nil

	case "remove":
		v, err := parseArg(args, 0)
		if err != nil {
			return err
		}
		return r.seq.Remove(v)

	case "discard":
		v, err := parseArg(args, 0)
		if err != nil {
			return err
		}
		r.seq.Discard(v)
		return nil

	case "pop":
		idx := -1
		if len(args) > 0 {
			v, err := parseArg(args, 0)
			if err != nil {
				return err
			}
			idx = v
		}
		val, err := r.seq.Pop(idx)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.output, val)
		return nil

	case "at", "get":
		idx, err := parseArg(args, 0)
		if err != nil {
			return err
		}
		val, err := r.seq.At(idx)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.output, val)
		return nil

	case "slice":
		start, err := parseArg(args, 0)
		if err != nil {
			return err
		}
		stop, err := parseArg(args, 1)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.output, r.seq.Slice(start, stop))
		return nil

	case "count":
		v, err := parseArg(args, 0)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.output, r.seq.Count(v))
		return nil

	case "index":
		v, err := parseArg(args, 0)
		if err != nil {
			return err
		}
		idx, err := r.seq.Index(v, 0, r.seq.Len())
		if err != nil {
			return err
		}
		fmt.Fprintln(r.output, idx)
		return nil

	case "bisectleft":
		v, err := parseArg(args, 0)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.output, r.seq.BisectLeft(v))
		return nil

	case "bisectright":
		v, err := parseArg(args, 0)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.output, r.seq.BisectRight(v))
		return nil

	case "len":
		fmt.Fprintln(r.output, r.seq.Len())
		return nil

	case "clear":
		r.seq.Clear()
		return nil

	case "check":
		if err := r.seq.Check(); err != nil {
			return err
		}
		fmt.Fprintln(r.output, "ok")
		return nil

	case "list":
		fmt.Fprintln(r.output, r.seq.Values())
		return nil

	default:
		return fmt.Errorf("unknown command: %s (try .help)", cmd)
	}
}

func parseArg(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing argument %d", i+1)
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", args[i], err)
	}
	return v, nil
}

// handleDotCommand processes special dot commands.
func (r *REPL) handleDotCommand(cmd string) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return
	}

	switch strings.ToLower(parts[0]) {
	case ".exit", ".quit":
		r.exitRequested = true
	case ".help":
		r.printHelp()
	default:
		fmt.Fprintf(r.errOutput, "Unknown command: %s\n", parts[0])
		fmt.Fprintln(r.errOutput, "Use \".help\" for usage hints.")
	}
}

// printHelp displays help information.
func (r *REPL) printHelp() {
	help := `
.exit                Exit this program
.help                Show this help message
.quit                Exit this program

add V                Insert V
remove V             Remove the first V, error if absent
discard V            Remove the first V, silent if absent
pop [I]              Remove and print element at index I (default: last)
at I / get I         Print element at index I
slice A B            Print elements in [A, B)
count V              Print how many elements equal V
index V              Print the leftmost index of V
bisectleft V         Print insertion point before any equal V
bisectright V        Print insertion point after any equal V
len                  Print the element count
clear                Remove every element
check                Audit internal invariants
list                 Print every element in sorted order
`
	fmt.Fprintln(r.output, help)
}

// printError prints an error message to the error output.
func (r *REPL) printError(err error) {
	fmt.Fprintf(r.errOutput, "Error: %v\n", err)
}
