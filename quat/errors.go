// SPDX-License-Identifier: MIT

package quat

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a component index outside [0, 4).
var ErrOutOfRange = errors.New("quat: index out of range")

func indexErrorf(method string, i int) error {
	return fmt.Errorf("Quat.%s(%d): %w", method, i, ErrOutOfRange)
}
