// SPDX-License-Identifier: MIT

// Package matrix - linear buffer view.
//
// Purpose:
//   - Expose a matrix's cells as one flat run of N² values, column-major
//     (offset k = col*N + row), in the host's native byte order, without copying.
//   - Hand the view to consumers (rendering APIs, io.Writer sinks) that expect
//     a read position of 0.
//
// Contract:
//   - Position() is 0 at every observation. WriteTo advances an internal
//     cursor column by column and rewinds it before returning, on success and
//     on writer failure alike. Get and ReadAt are absolute and never move it.
//   - The view aliases the matrix: mutations made through the matrix after
//     Buffer() was called are visible through the view and vice versa.
//
// AI-Hints:
//   - Obtain a fresh view with (*MatN).Buffer(); views are cheap (one small struct).
package matrix

import (
	"encoding/binary"
	"io"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Buffer is a read-only, zero-copy projection of a matrix's cells.
type Buffer[T scalar.Float] struct {
	cells []T // aliases the owning matrix
	order int // N
	pos   int // byte cursor; 0 whenever control is with the caller
}

var (
	_ io.ReaderAt = (*Buffer[float32])(nil)
	_ io.WriterTo = (*Buffer[float64])(nil)
)

func newBuffer[T scalar.Float](cells []T, order int) *Buffer[T] {
	return &Buffer[T]{cells: cells, order: order}
}

// NativeByteOrder is the byte order of the host, and therefore of Bytes().
func NativeByteOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// ByteOrder reports the byte order of Bytes(); always the host order.
func (b *Buffer[T]) ByteOrder() binary.ByteOrder { return NativeByteOrder() }

// Len returns the number of cells (N²).
func (b *Buffer[T]) Len() int { return len(b.cells) }

// CellSize returns the width of one cell in bytes (4 or 8).
func (b *Buffer[T]) CellSize() int {
	var zero T

	return int(unsafe.Sizeof(zero))
}

// Size returns the view's length in bytes.
func (b *Buffer[T]) Size() int { return b.Len() * b.CellSize() }

// Position returns the read cursor in bytes.
func (b *Buffer[T]) Position() int { return b.pos }

// Rewind resets the cursor to 0 and returns b.
func (b *Buffer[T]) Rewind() *Buffer[T] {
	b.pos = 0

	return b
}

// Get returns the cell at linear offset k = col*N + row.
func (b *Buffer[T]) Get(k int) (T, error) {
	if k < 0 || k >= len(b.cells) {
		return 0, indexErrorf("Buffer", ctxBufferGet, k)
	}

	return b.cells[k], nil
}

// Floats returns the cells as a slice aliasing the matrix.
func (b *Buffer[T]) Floats() []T { return b.cells }

// Bytes returns the cells' memory as bytes in native order, aliasing the matrix.
func (b *Buffer[T]) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(b.cells))), b.Size())
}

// ReadAt implements io.ReaderAt over Bytes(). The cursor is not used.
func (b *Buffer[T]) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, indexErrorf("Buffer", ctxBufferReadAt, int(off))
	}
	raw := b.Bytes()
	if off >= int64(len(raw)) {
		return 0, io.EOF
	}
	n := copy(p, raw[off:])
	if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}

// WriteTo implements io.WriterTo: it writes the whole view, one column at a
// time, and always leaves the cursor at 0.
func (b *Buffer[T]) WriteTo(w io.Writer) (int64, error) {
	defer b.Rewind()

	raw := b.Bytes()
	colBytes := b.order * b.CellSize()
	var total int64
	for b.pos = 0; b.pos < len(raw); b.pos += colBytes {
		n, err := w.Write(raw[b.pos : b.pos+colBytes])
		total += int64(n)
		if err != nil {
			return total, err
		}
		if n < colBytes {
			return total, io.ErrShortWrite
		}
	}

	return total, nil
}
