package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshub/meshub/expr"
	"github.com/meshub/meshub/matrix"
)

func TestNew_Shapes(t *testing.T) {
	m, err := matrix.New(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.False(t, m.IsEmpty())

	// Fresh matrices are all zeros.
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.True(t, v.IsZero())

	// Zero-row shapes are legal (empty characteristic matrices).
	empty, err := matrix.New(0, 3)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 3, empty.Cols())
	require.True(t, empty.IsEmpty())

	// Negative dimensions are not.
	_, err = matrix.New(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.New(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromRows_AndRagged(t *testing.T) {
	m, err := matrix.FromRows([][]expr.Value{
		{expr.Num(1), expr.Sym("eta")},
		{expr.Num(0), expr.Num(-1)},
	})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, v.Equal(expr.Sym("eta")))

	_, err = matrix.FromRows([][]expr.Value{
		{expr.Num(1)},
		{expr.Num(1), expr.Num(2)},
	})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	zero, err := matrix.FromRows(nil)
	require.NoError(t, err)
	require.True(t, zero.IsEmpty())
}

func TestFromFloats_Values(t *testing.T) {
	m, err := matrix.FromFloats([][]float64{{1, 0}, {0, -1}})
	require.NoError(t, err)
	require.True(t, m.IsNumeric())

	got, err := m.Float64s()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {0, -1}}, got)
}

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	got, err := id.Float64s()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, got)

	none, err := matrix.Identity(0)
	require.NoError(t, err)
	require.True(t, none.IsEmpty())
}

func TestAtSet_Bounds(t *testing.T) {
	m, err := matrix.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, expr.Sym("x")))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, v.Equal(expr.Sym("x")))

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	err = m.Set(-1, 0, expr.Num(1))
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	err = m.AddAt(0, 2, expr.Num(1))
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestAddAt_Accumulates(t *testing.T) {
	m, err := matrix.New(1, 1)
	require.NoError(t, err)

	require.NoError(t, m.AddAt(0, 0, expr.Num(2)))
	require.NoError(t, m.AddAt(0, 0, expr.Num(3)))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, v.Equal(expr.Num(5)))

	require.NoError(t, m.AddAt(0, 0, expr.Sym("eta")))
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.False(t, v.IsNumeric())
}

func TestClone_Independence(t *testing.T) {
	m, err := matrix.FromFloats([][]float64{{1, 2}})
	require.NoError(t, err)

	cl := m.Clone()
	require.True(t, m.Equal(cl))

	require.NoError(t, cl.Set(0, 0, expr.Num(9)))
	require.False(t, m.Equal(cl))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, v.Equal(expr.Num(1)), "original must be untouched")
}

func TestEqual_ShapesAndEntries(t *testing.T) {
	a, err := matrix.FromFloats([][]float64{{1, 2}})
	require.NoError(t, err)
	b, err := matrix.FromFloats([][]float64{{1}, {2}})
	require.NoError(t, err)
	require.False(t, a.Equal(b), "1x2 vs 2x1 differ")

	var nilM *matrix.Dense
	require.False(t, a.Equal(nilM))
	require.True(t, nilM.Equal(nil))
}

func TestIsNumeric_AndSymbols(t *testing.T) {
	m, err := matrix.FromRows([][]expr.Value{
		{expr.Sym("eta_q"), expr.Num(-1), expr.Num(0)},
		{expr.Sym("eta_w"), expr.Num(0), expr.Num(-1)},
	})
	require.NoError(t, err)
	require.False(t, m.IsNumeric())
	require.Equal(t, []string{"eta_q", "eta_w"}, m.Symbols())

	sub := m.Substitute(map[string]float64{"eta_q": 0.5, "eta_w": 0.35})
	require.True(t, sub.IsNumeric())
	require.False(t, m.IsNumeric(), "Substitute must not mutate the receiver")
}

func TestString_Rendering(t *testing.T) {
	m, err := matrix.FromRows([][]expr.Value{
		{expr.Sym("eta"), expr.Num(-1)},
		{expr.Num(0), expr.Num(1)},
	})
	require.NoError(t, err)
	require.Equal(t, "[eta -1]\n[0 1]", m.String())

	empty, err := matrix.New(0, 2)
	require.NoError(t, err)
	require.Equal(t, "[0x2]", empty.String())
}
