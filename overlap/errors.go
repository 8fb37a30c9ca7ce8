// SPDX-License-Identifier: MIT

package overlap

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds indicates a row or column index outside [0, Size()).
	ErrIndexOutOfBounds = errors.New("overlap: index out of bounds")

	// ErrSizeMismatch indicates Insert was given a collection whose length
	// is not Size()+1.
	ErrSizeMismatch = errors.New("overlap: collection does not match table size")
)

// tableErrorf attaches the method name and indices to a sentinel error.
func tableErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, i, j, err)
}
