// cmd/sortedseq/main.go
//
// sortedseq CLI - interactive shell for poking at a sortedseq.List[int].
//
// Usage:
//
//	sortedseq [load]
//
// load defaults to sortedseq.DefaultLoad when omitted. Use .help for
// available commands.
package main

import (
	"fmt"
	"os"
	"strconv"

	"sortedseq/pkg/cli"
)

func main() {
	load := 0
	if len(os.Args) > 1 {
		v, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid load %q: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		load = v
	}

	repl, err := cli.NewREPL(load, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	repl.Run()
}
