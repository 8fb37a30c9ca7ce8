// SPDX-License-Identifier: MIT

package fragment

import (
	"errors"
	"fmt"
)

// ErrInvalidAlphabet indicates a symbol outside {A, C, G, T} was passed to New.
// Callers match it with errors.Is; the concrete error is an *AlphabetError.
var ErrInvalidAlphabet = errors.New("fragment: invalid nucleotide symbol")

// AlphabetError reports the first offending symbol found by New.
type AlphabetError struct {
	// Symbol is the rejected rune, exactly as it appeared in the input.
	Symbol rune

	// Offset is the byte offset of Symbol within the input string.
	Offset int
}

// Error implements error.
func (e *AlphabetError) Error() string {
	return fmt.Sprintf("%s %q at offset %d", ErrInvalidAlphabet.Error(), e.Symbol, e.Offset)
}

// Is lets errors.Is(err, ErrInvalidAlphabet) succeed for any *AlphabetError.
func (e *AlphabetError) Is(target error) bool {
	return target == ErrInvalidAlphabet
}
