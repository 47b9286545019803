// SPDX-License-Identifier: MIT
// Package analysis: numeric coupling-matrix path.
//
// File: numeric.go
// Role: DeriveNumeric — the same solve as Derive, run in float64 on
//       gonum once the model matrices are collapsed under bindings.

package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/meshub/meshub/hub"
	"github.com/meshub/meshub/matrix"
)

// DeriveNumeric computes the coupling matrix in float64 arithmetic: Z is
// collapsed under params first, then the system solve runs on gonum
// instead of expression algebra. Prefer it when the model is fully
// numeric (or params bind every symbol) and only numbers are needed — the
// closed form of Derive costs O(N³) expression building, this path a
// plain dense solve.
//
// Every symbol in Z must be bound (the wrapped error names the first
// unbound one); shape and dependency failures carry the same sentinels as
// Derive.
func DeriveNumeric(m *hub.Model, params map[string]float64) (*Coupling, error) {
	if m == nil {
		return nil, fmt.Errorf("DeriveNumeric: %w", ErrNilModel)
	}
	z, err := m.Z().Eval(params)
	if err != nil {
		return nil, fmt.Errorf("DeriveNumeric: Z: %w", err)
	}
	q, n, err := systemMatrix(m, z)
	if err != nil {
		return nil, fmt.Errorf("DeriveNumeric: %w", err)
	}
	ins, outs := m.Inputs(), m.Outputs()
	if len(ins) == 0 || len(outs) == 0 {
		return &Coupling{inputs: ins, outputs: outs, c: matrix.Must(matrix.New(len(outs), len(ins)))}, nil
	}
	qm, err := q.ToMat()
	if err != nil {
		return nil, fmt.Errorf("DeriveNumeric: %w", err)
	}
	rm := mat.NewDense(n, len(ins), nil)
	for i := range ins {
		rm.Set(i, i, -1)
	}
	var w mat.Dense
	if err := w.Solve(qm, rm); err != nil {
		return nil, fmt.Errorf("DeriveNumeric: solve failed (%v): %w", err, ErrSingular)
	}
	ym, err := m.Y().ToMat()
	if err != nil {
		return nil, fmt.Errorf("DeriveNumeric: %w", err)
	}
	var cm mat.Dense
	cm.Mul(ym, &w)
	cm.Scale(-1, &cm)
	cd, err := matrix.FromMat(&cm)
	if err != nil {
		return nil, fmt.Errorf("DeriveNumeric: %w", err)
	}
	return &Coupling{inputs: ins, outputs: outs, c: cd}, nil
}
