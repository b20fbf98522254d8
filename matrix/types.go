// SPDX-License-Identifier: MIT

// Package matrix: shared interfaces used by dense and banded storage.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Reader is the read-only surface shared by every matrix shape in this
// package. BandedMatrix implements only Reader: its shape is fixed and its
// bands are never written after construction.
//
// Complexity notes: all methods are expected O(1).
type Reader interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	Reader

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
