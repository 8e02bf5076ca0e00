// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every public operation that can fail returns one of these sentinels, wrapped
// with the method name and offending indices; tests match them via errors.Is.
// Singular inversion is NOT an error: it is reported through the comma-ok
// result of Invert/InvertInPlace.

package matrix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrOutOfRange indicates a row, column or buffer offset outside its valid range.
	// It is raised before any cell is written.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// ---------- error context tags ----------

const (
	ctxAt           = "At"
	ctxSet          = "Set"
	ctxRow          = "Row"
	ctxColumn       = "Column"
	ctxExchangeRows = "ExchangeRows"
	ctxScaleRow     = "ScaleRow"
	ctxAddRowScaled = "AddRowScaled"
	ctxBufferGet    = "Get"
	ctxBufferReadAt = "ReadAt"
)

// indexErrorf wraps ErrOutOfRange as "<Type>.<method>(i,j,...): matrix: index out of range".
func indexErrorf(typ, method string, idx ...int) error {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}

	return fmt.Errorf("%s.%s(%s): %w", typ, method, strings.Join(parts, ","), ErrOutOfRange)
}
