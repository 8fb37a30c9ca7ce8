package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat indicates an unrecognised format name.
	ErrUnknownFormat = errors.New("loader: unknown format")

	// ErrMissingHeader indicates FASTA sequence data before the first '>' header.
	ErrMissingHeader = errors.New("loader: sequence data before first FASTA header")
)

// RecordError ties a rejected record to its position in the input.
type RecordError struct {
	Line int    // 1-based line of the record (the header line for FASTA)
	Name string // FASTA record name, empty for line input
	Err  error  // underlying cause, usually a *fragment.AlphabetError
}

// Error implements error.
func (e *RecordError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("loader: line %d (%s): %v", e.Line, e.Name, e.Err)
	}
	return fmt.Sprintf("loader: line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *RecordError) Unwrap() error { return e.Err }
