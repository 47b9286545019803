// SPDX-License-Identifier: MIT
// Package analysis: Gauss-Jordan elimination over expression arithmetic.
//
// File: invert.go
// Role: invert — symbolic matrix inverse backing the system solve in
//       Derive.
//
// Elimination over unsimplified expressions has one trap: a row operation
// can leave an entry that is algebraically zero but structurally a sum,
// and dividing by it would corrupt the result. Pivot candidacy therefore
// goes through vanishes(), which backs the structural check with numeric
// probes at fixed symbol assignments: a rational expression that is not
// identically zero is nonzero at a generic point, so two agreeing probes
// decide zero with negligible error.

package analysis

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/meshub/meshub/expr"
	"github.com/meshub/meshub/matrix"
)

// probeTol bounds the accumulated float64 rounding of an identically-zero
// expression evaluated at O(1)-magnitude probe points.
const probeTol = 1e-9

// invert returns q⁻¹ for a square q. Pivots prefer numeric entries so
// that divisions fold into coefficients and a numeric matrix keeps a
// numeric inverse. Fails with ErrSingular when a column offers no usable
// pivot.
func invert(q *matrix.Dense) (*matrix.Dense, error) {
	n := q.Rows()
	a := q.Clone()
	inv := matrix.Must(matrix.Identity(n))
	for col := 0; col < n; col++ {
		piv := pivotRow(a, col)
		if piv < 0 {
			return nil, fmt.Errorf("invert: no pivot for column %d: %w", col, ErrSingular)
		}
		swapRows(a, col, piv)
		swapRows(inv, col, piv)
		p, _ := a.At(col, col)
		divideRow(a, col, p)
		divideRow(inv, col, p)
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f, _ := a.At(r, col)
			if vanishes(f) {
				continue
			}
			eliminateRow(a, r, col, f)
			eliminateRow(inv, r, col, f)
		}
	}
	return inv, nil
}

// pivotRow picks the elimination row for col among rows col..n-1: the
// first numeric nonzero when one exists, otherwise the first symbolic
// entry that does not vanish.
func pivotRow(a *matrix.Dense, col int) int {
	piv := -1
	for r := col; r < a.Rows(); r++ {
		v, _ := a.At(r, col)
		if f, ok := v.Float64(); ok {
			if f != 0 {
				return r
			}
			continue
		}
		if piv < 0 && !vanishes(v) {
			piv = r
		}
	}
	return piv
}

// vanishes reports whether v is identically zero. Numeric entries compare
// directly; symbolic entries are evaluated at two fixed probe assignments
// and declared zero only when both collapse below probeTol.
func vanishes(v expr.Value) bool {
	if f, ok := v.Float64(); ok {
		return f == 0
	}
	syms := v.Symbols()
	for probe := 0; probe < 2; probe++ {
		bind := make(map[string]float64, len(syms))
		for _, s := range syms {
			bind[s] = probePoint(s, probe)
		}
		f, err := v.Eval(bind)
		if err != nil {
			// The probe hit a pole, so v is not identically zero.
			return false
		}
		if math.Abs(f) > probeTol {
			return false
		}
	}
	return true
}

// probePoint maps a symbol name to a fixed point in (1, 3.5), different
// per probe round. Integer-free magnitudes avoid accidental cancellations
// such as eta - 2.
func probePoint(sym string, probe int) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sym))
	_, _ = h.Write([]byte{byte(probe)})
	return 1 + 2.5*float64(h.Sum32())/float64(math.MaxUint32)
}

// Row helpers. Indices are in range by construction, so the matrix
// accessor errors are impossible and ignored.

func swapRows(m *matrix.Dense, a, b int) {
	if a == b {
		return
	}
	for j := 0; j < m.Cols(); j++ {
		va, _ := m.At(a, j)
		vb, _ := m.At(b, j)
		_ = m.Set(a, j, vb)
		_ = m.Set(b, j, va)
	}
}

// divideRow scales row r by 1/p.
func divideRow(m *matrix.Dense, r int, p expr.Value) {
	for j := 0; j < m.Cols(); j++ {
		v, _ := m.At(r, j)
		_ = m.Set(r, j, expr.Div(v, p))
	}
}

// eliminateRow applies row r -= f · row src.
func eliminateRow(m *matrix.Dense, r, src int, f expr.Value) {
	for j := 0; j < m.Cols(); j++ {
		v, _ := m.At(r, j)
		s, _ := m.At(src, j)
		_ = m.Set(r, j, expr.Sub(v, expr.Mul(f, s)))
	}
}
