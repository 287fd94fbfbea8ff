// SPDX-License-Identifier: MIT

package matrix

// Matrix is the minimal read/write surface shared by every implementation.
// All methods are O(1); At and Set return sentinel errors on out-of-range
// indices instead of panicking.
type Matrix interface {
	// Rows returns the number of rows (≥ 0).
	Rows() int
	// Cols returns the number of columns (≥ 0).
	Cols() int
	// At retrieves the element at (row, col) or returns ErrOutOfRange.
	At(row, col int) (float64, error)
	// Set assigns v at (row, col) or returns ErrOutOfRange / ErrNaNInf.
	Set(row, col int, v float64) error
	// Clone returns a deep copy sharing no storage with the receiver.
	Clone() Matrix
}
