package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/meshub/meshub/expr"
)

// Float64s exports a fully numeric matrix as fresh [][]float64 rows.
// Any symbolic entry fails with ErrSymbolicEntry naming its position;
// nothing is coerced.
//
// Complexity: O(r*c).
func (m *Dense) Float64s() ([][]float64, error) {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		for j := 0; j < m.c; j++ {
			f, ok := m.data[i*m.c+j].Float64()
			if !ok {
				return nil, denseErrorf("Float64s", i, j, ErrSymbolicEntry)
			}
			row[j] = f
		}
		out[i] = row
	}
	return out, nil
}

// ToMat exports a fully numeric matrix as a gonum *mat.Dense for downstream
// numeric linear algebra. gonum cannot represent zero-sized shapes, so an
// empty matrix fails with ErrEmptyMatrix; symbolic entries fail with
// ErrSymbolicEntry.
//
// Complexity: O(r*c).
func (m *Dense) ToMat() (*mat.Dense, error) {
	if m.IsEmpty() {
		return nil, fmt.Errorf("ToMat: %dx%d: %w", m.r, m.c, ErrEmptyMatrix)
	}
	flat := make([]float64, len(m.data))
	for i, v := range m.data {
		f, ok := v.Float64()
		if !ok {
			return nil, denseErrorf("ToMat", i/m.c, i%m.c, ErrSymbolicEntry)
		}
		flat[i] = f
	}
	return mat.NewDense(m.r, m.c, flat), nil
}

// FromMat imports a gonum matrix into a numeric Dense. The input is read
// through the mat.Matrix interface and copied; it is never retained.
//
// Complexity: O(r*c).
func FromMat(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromMat: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := New(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = expr.Num(src.At(i, j))
		}
	}
	return out, nil
}
