// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a component index outside [0, N).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates bulk operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
)

// indexErrorf wraps ErrOutOfRange with the method and offending index.
func indexErrorf(method string, i int) error {
	return fmt.Errorf("%s(%d): %w", method, i, ErrOutOfRange)
}
