// SPDX-License-Identifier: MIT
// Package analysis: coupling-matrix derivation.
//
// File: coupling.go
// Role: Derive — collapse a compiled model into the steady-state law
//       V_out = C·V_in, and expose that law for lookup and evaluation.
//
// A compiled model fixes Z·V = 0, V_in = X·V and V_out = Y·V. Stacking the
// input selector on the effective rows of Z gives the square system
//
//	Q·V + R·V_in = 0,  Q = [X; Z_eff],  R = [-I; 0]
//
// so V = -Q⁻¹·R·V_in and the coupling matrix is C = -Y·Q⁻¹·R. Port-tie
// rows of diagonal-incidence components cancel to all-zero during
// assembly and constrain nothing; Z_eff drops them, so a well-formed hub
// arrives here with exactly one equation per branch.

package analysis

import (
	"fmt"

	"github.com/meshub/meshub/expr"
	"github.com/meshub/meshub/hub"
	"github.com/meshub/meshub/matrix"
)

// Coupling is the input/output law of a compiled model: flows on the
// output nodes as a linear map of the flows on the input nodes. Entries
// are expression values, so a symbolically parameterized hub yields a
// symbolic law. A Coupling is immutable; accessors return copies.
type Coupling struct {
	inputs  []string
	outputs []string
	c       *matrix.Dense
}

// Derive computes the coupling matrix of m over expression arithmetic.
// Symbolic parameters survive into the entries of C, so the result is the
// hub's law in closed form. Fails with ErrNotSquare when the topology does
// not pin every branch with exactly one effective equation (storage state
// branches are the usual cause) and with ErrSingular when the equations
// are linearly dependent.
//
// Determinism: same model, same law. Complexity: O(N³) entry operations
// for N branches.
func Derive(m *hub.Model) (*Coupling, error) {
	if m == nil {
		return nil, fmt.Errorf("Derive: %w", ErrNilModel)
	}
	q, n, err := systemMatrix(m, m.Z())
	if err != nil {
		return nil, fmt.Errorf("Derive: %w", err)
	}
	ins, outs := m.Inputs(), m.Outputs()
	if len(ins) == 0 || len(outs) == 0 {
		return &Coupling{inputs: ins, outputs: outs, c: matrix.Must(matrix.New(len(outs), len(ins)))}, nil
	}
	qinv, err := invert(q)
	if err != nil {
		return nil, fmt.Errorf("Derive: %w", err)
	}
	w, err := matrix.Mul(qinv, injection(n, len(ins)))
	if err != nil {
		return nil, fmt.Errorf("Derive: %w", err)
	}
	yw, err := matrix.Mul(m.Y(), w)
	if err != nil {
		return nil, fmt.Errorf("Derive: %w", err)
	}
	return &Coupling{inputs: ins, outputs: outs, c: yw.Scale(expr.Num(-1))}, nil
}

// systemMatrix stacks X on the effective rows of z and checks that the
// result is square: one equation per branch. Returns the stack and the
// branch count.
func systemMatrix(m *hub.Model, z *matrix.Dense) (*matrix.Dense, int, error) {
	q, err := matrix.VStack(m.X(), effectiveRows(z))
	if err != nil {
		return nil, 0, err
	}
	n := m.BranchCount()
	if q.Rows() != n {
		return nil, 0, fmt.Errorf("%d equations for %d branches: %w", q.Rows(), n, ErrNotSquare)
	}
	return q, n, nil
}

// effectiveRows drops the all-zero rows of z. What remains are the
// conversion laws and the genuine flow-through ties.
func effectiveRows(z *matrix.Dense) *matrix.Dense {
	keep := make([]int, 0, z.Rows())
	for i := 0; i < z.Rows(); i++ {
		for j := 0; j < z.Cols(); j++ {
			v, _ := z.At(i, j)
			if !v.IsZero() {
				keep = append(keep, i)
				break
			}
		}
	}
	out := matrix.Must(matrix.New(len(keep), z.Cols()))
	for oi, zi := range keep {
		for j := 0; j < z.Cols(); j++ {
			v, _ := z.At(zi, j)
			// Indices are in range by construction.
			_ = out.Set(oi, j, v)
		}
	}
	return out
}

// injection builds R = [-I; 0]: the first nIn stacked equations read
// X·V - V_in = 0, the remaining rows carry no boundary term.
func injection(rows, nIn int) *matrix.Dense {
	neg := matrix.Must(matrix.Identity(nIn)).Scale(expr.Num(-1))
	zero := matrix.Must(matrix.New(rows-nIn, nIn))
	return matrix.Must(matrix.VStack(neg, zero))
}

// Inputs returns the hub's input node names, one per matrix column.
func (c *Coupling) Inputs() []string {
	out := make([]string, len(c.inputs))
	copy(out, c.inputs)
	return out
}

// Outputs returns the hub's output node names, one per matrix row.
func (c *Coupling) Outputs() []string {
	out := make([]string, len(c.outputs))
	copy(out, c.outputs)
	return out
}

// Matrix returns a copy of C, rows in Outputs() order and columns in
// Inputs() order.
func (c *Coupling) Matrix() *matrix.Dense { return c.c.Clone() }

// At returns the entry mapping flow on the named input node to flow on
// the named output node. Unknown names fail with ErrUnknownBoundary.
func (c *Coupling) At(output, input string) (expr.Value, error) {
	i := indexOf(c.outputs, output)
	if i < 0 {
		return expr.Value{}, fmt.Errorf("At: output %q: %w", output, ErrUnknownBoundary)
	}
	j := indexOf(c.inputs, input)
	if j < 0 {
		return expr.Value{}, fmt.Errorf("At: input %q: %w", input, ErrUnknownBoundary)
	}
	v, err := c.c.At(i, j)
	if err != nil {
		return expr.Value{}, fmt.Errorf("At: %w", err)
	}
	return v, nil
}

// Eval collapses the law to numbers under the given parameter bindings.
// Every symbol in C must be bound. The receiver is unchanged.
func (c *Coupling) Eval(params map[string]float64) (*matrix.Dense, error) {
	out, err := c.c.Eval(params)
	if err != nil {
		return nil, fmt.Errorf("Eval: %w", err)
	}
	return out, nil
}

// Flows applies the law to concrete input flows, returning the flow on
// each output node. Every input node needs a value (ErrMissingInput),
// extra keys are rejected (ErrUnknownBoundary), and params must bind
// every symbolic parameter of the law.
func (c *Coupling) Flows(in map[string]float64, params map[string]float64) (map[string]float64, error) {
	vin := make([]float64, len(c.inputs))
	for j, name := range c.inputs {
		v, ok := in[name]
		if !ok {
			return nil, fmt.Errorf("Flows: %q: %w", name, ErrMissingInput)
		}
		vin[j] = v
	}
	if len(in) != len(c.inputs) {
		return nil, fmt.Errorf("Flows: %d values for %d inputs: %w", len(in), len(c.inputs), ErrUnknownBoundary)
	}
	num, err := c.c.Eval(params)
	if err != nil {
		return nil, fmt.Errorf("Flows: %w", err)
	}
	out := make(map[string]float64, len(c.outputs))
	for i, name := range c.outputs {
		acc := 0.0
		for j := range c.inputs {
			e, _ := num.At(i, j)
			f, _ := e.Float64()
			acc += f * vin[j]
		}
		out[name] = acc
	}
	return out, nil
}

// indexOf returns the position of want in names, or -1.
func indexOf(names []string, want string) int {
	for i, n := range names {
		if n == want {
			return i
		}
	}
	return -1
}
