// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations return these sentinels (wrapped with
// method context via %w) and tests check them via errors.Is. No operation
// panics on user-triggered conditions.

package matrix

import "errors"

// ErrInvalidDimensions is returned when a requested dimension is negative.
// Zero rows (and zero columns) are legal — empty characteristic matrices
// are part of the component contract — so only negatives are rejected.
// Usage: if errors.Is(err, ErrInvalidDimensions) { /* fix the shape */ }.
var ErrInvalidDimensions = errors.New("matrix: negative dimension")

// ErrIndexOutOfBounds indicates that a row or column index is outside the
// valid range. Public indexers (At/Set/AddAt) return it, never panic.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ErrDimensionMismatch indicates incompatible operand shapes: ragged input
// rows, VStack over different column counts, or Mul where a.Cols != b.Rows.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// ErrNilMatrix indicates a nil *Dense receiver or operand.
var ErrNilMatrix = errors.New("matrix: nil matrix")

// ErrSymbolicEntry is returned by numeric exports (Float64s, ToMat) when
// the matrix still carries a symbolic entry; the wrapped message names the
// offending position. Export never coerces symbols.
var ErrSymbolicEntry = errors.New("matrix: symbolic entry where numeric required")

// ErrEmptyMatrix is returned by exports that cannot represent zero-sized
// shapes (gonum rejects 0×c and r×0 matrices).
var ErrEmptyMatrix = errors.New("matrix: empty matrix")
