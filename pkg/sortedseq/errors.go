// pkg/sortedseq/errors.go
package sortedseq

import "errors"

// Sentinel errors identify the four error kinds a container can raise.
// Use errors.Is against these to distinguish failure modes.
var (
	// ErrOrderViolation is returned when an operation would place a value
	// out of sorted order. The container is left unchanged.
	ErrOrderViolation = errors.New("sortedseq: value violates sort order")

	// ErrOutOfRange is returned when a positional index falls outside [-n, n).
	ErrOutOfRange = errors.New("sortedseq: index out of range")

	// ErrNotFound is returned when a lookup finds no matching element.
	ErrNotFound = errors.New("sortedseq: value not found")

	// ErrInvalidArgument is returned for malformed call arguments: a zero
	// slice step, a load factor below the minimum, or mismatched lengths
	// in an extended-slice assignment.
	ErrInvalidArgument = errors.New("sortedseq: invalid argument")
)
