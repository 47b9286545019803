// SPDX-License-Identifier: MIT
// Package analysis: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// analysis package. All operations return these sentinels (wrapped with
// method context via %w) and tests check them via errors.Is.

package analysis

import "errors"

// ErrNilModel indicates a nil *hub.Model argument.
var ErrNilModel = errors.New("analysis: nil model")

// ErrNotSquare indicates that the stacked system matrix [X; Z] does not
// have one effective equation per branch, so the hub is under- or
// over-determined and no input/output law exists. The wrapped message
// carries the equation and branch counts.
// Usage: if errors.Is(err, ErrNotSquare) { /* topology lacks constraints */ }.
var ErrNotSquare = errors.New("analysis: system matrix is not square")

// ErrSingular indicates that the system matrix has no inverse: some
// equations are linearly dependent, typically because two constraints pin
// the same branches. Symbolically this surfaces when no usable pivot
// remains for a column; numerically when the solver rejects the system.
var ErrSingular = errors.New("analysis: system matrix is singular")

// ErrUnknownBoundary indicates an input or output node name that the
// coupling law does not carry.
var ErrUnknownBoundary = errors.New("analysis: unknown boundary node")

// ErrMissingInput indicates that a flow evaluation was not given a value
// for one of the hub's input nodes.
var ErrMissingInput = errors.New("analysis: missing input value")
