package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshub/meshub/expr"
)

// TestNum_Basics covers the numeric leaf: zero value, IsNumeric, Float64.
func TestNum_Basics(t *testing.T) {
	var zero expr.Value // zero Value must behave as the number 0
	require.True(t, zero.IsNumeric())
	require.True(t, zero.IsZero())

	v := expr.Num(2.5)
	f, ok := v.Float64()
	require.True(t, ok)
	require.Equal(t, 2.5, f)
	require.False(t, v.IsZero())
	require.Empty(t, v.Symbols())
}

// TestSym_Basics covers the symbolic leaf.
func TestSym_Basics(t *testing.T) {
	v := expr.Sym("eta")
	require.False(t, v.IsNumeric())
	_, ok := v.Float64()
	require.False(t, ok)
	require.Equal(t, []string{"eta"}, v.Symbols())
	require.Equal(t, "eta", v.String())
}

// TestAdd_Canonicalization checks folding, flattening and zero elision.
func TestAdd_Canonicalization(t *testing.T) {
	// All-numeric sums fold to a plain number.
	require.True(t, expr.Add(expr.Num(1), expr.Num(2), expr.Num(3)).Equal(expr.Num(6)))

	// Zero terms vanish entirely.
	require.True(t, expr.Add(expr.Sym("a"), expr.Num(0)).Equal(expr.Sym("a")))

	// Nested sums flatten: (a + b) + c == a + b + c structurally.
	nested := expr.Add(expr.Add(expr.Sym("a"), expr.Sym("b")), expr.Sym("c"))
	flat := expr.Add(expr.Sym("a"), expr.Sym("b"), expr.Sym("c"))
	require.True(t, nested.Equal(flat))

	// Empty sum is zero.
	require.True(t, expr.Add().IsZero())
}

// TestMul_Canonicalization checks coefficients, annihilation and identity.
func TestMul_Canonicalization(t *testing.T) {
	require.True(t, expr.Mul(expr.Num(2), expr.Num(3)).Equal(expr.Num(6)))

	// Zero annihilates even symbolic products.
	require.True(t, expr.Mul(expr.Num(0), expr.Sym("eta")).IsZero())

	// Unit coefficient is elided.
	require.True(t, expr.Mul(expr.Num(1), expr.Sym("eta")).Equal(expr.Sym("eta")))

	// Constants fold into one leading coefficient.
	got := expr.Mul(expr.Num(2), expr.Sym("x"), expr.Num(3))
	want := expr.Mul(expr.Num(6), expr.Sym("x"))
	require.True(t, got.Equal(want))
}

// TestDiv_Canonicalization checks quotient folding rules.
func TestDiv_Canonicalization(t *testing.T) {
	require.True(t, expr.Div(expr.Num(6), expr.Num(3)).Equal(expr.Num(2)))
	require.True(t, expr.Div(expr.Sym("a"), expr.Num(1)).Equal(expr.Sym("a")))
	require.True(t, expr.Div(expr.Num(0), expr.Sym("a")).IsZero())

	// A numeric denominator becomes a coefficient, so scalings collapse.
	require.True(t, expr.Div(expr.Sym("x"), expr.Num(2)).Equal(expr.Mul(expr.Num(0.5), expr.Sym("x"))))
	require.True(t, expr.Div(expr.Neg(expr.Sym("x")), expr.Num(-1)).Equal(expr.Sym("x")))

	// Symbolic quotients stay symbolic.
	q := expr.Div(expr.Num(1), expr.Sym("eta_d"))
	require.False(t, q.IsNumeric())
	require.Equal(t, []string{"eta_d"}, q.Symbols())
}

// TestNeg_And_Sub exercises the derived constructors.
func TestNeg_And_Sub(t *testing.T) {
	require.True(t, expr.Neg(expr.Num(4)).Equal(expr.Num(-4)))
	require.True(t, expr.Sub(expr.Num(4), expr.Num(4)).IsZero())

	d := expr.Sub(expr.Mul(expr.Sym("eta"), expr.Sym("V")), expr.Sym("V"))
	got, err := d.Eval(map[string]float64{"eta": 1, "V": 7})
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

// TestEqual_IsStructural pins the documented limitation: Equal compares the
// canonical structure, it does not decide algebraic equivalence.
func TestEqual_IsStructural(t *testing.T) {
	ab := expr.Add(expr.Sym("a"), expr.Sym("b"))
	ba := expr.Add(expr.Sym("b"), expr.Sym("a"))
	require.False(t, ab.Equal(ba))
	require.True(t, ab.Equal(expr.Add(expr.Sym("a"), expr.Sym("b"))))
}

// TestSymbols_SortedUnique checks deduplication and ordering.
func TestSymbols_SortedUnique(t *testing.T) {
	v := expr.Add(
		expr.Mul(expr.Sym("eta_w"), expr.Sym("gas")),
		expr.Mul(expr.Sym("eta_q"), expr.Sym("gas")),
	)
	require.Equal(t, []string{"eta_q", "eta_w", "gas"}, v.Symbols())
}

// TestEval_Errors covers the two evaluation failure modes.
func TestEval_Errors(t *testing.T) {
	_, err := expr.Sym("missing").Eval(nil)
	require.ErrorIs(t, err, expr.ErrUnboundSymbol)

	q := expr.Div(expr.Num(1), expr.Sym("d"))
	_, err = q.Eval(map[string]float64{"d": 0})
	require.ErrorIs(t, err, expr.ErrDivisionByZero)
}

// TestSubstitute_PartialAndFull checks folding under substitution.
func TestSubstitute_PartialAndFull(t *testing.T) {
	v := expr.Mul(expr.Sym("eta"), expr.Sym("V"))

	part := v.Substitute(map[string]float64{"eta": 0.5})
	require.False(t, part.IsNumeric())
	require.Equal(t, []string{"V"}, part.Symbols())

	full := part.Substitute(map[string]float64{"V": 8})
	f, ok := full.Float64()
	require.True(t, ok)
	require.Equal(t, 4.0, f)
}

// TestString_Rendering locks the infix rendering for representative shapes.
func TestString_Rendering(t *testing.T) {
	cases := []struct {
		name string
		v    expr.Value
		want string
	}{
		{"number", expr.Num(0.9), "0.9"},
		{"negative number", expr.Num(-2), "-2"},
		{"symbol", expr.Sym("eta_q"), "eta_q"},
		{"product", expr.Mul(expr.Sym("eta"), expr.Sym("V")), "eta*V"},
		{"coefficient", expr.Mul(expr.Num(2), expr.Sym("x")), "2*x"},
		{"sum with constant last", expr.Add(expr.Sym("x"), expr.Num(3)), "x + 3"},
		{"difference", expr.Sub(expr.Sym("a"), expr.Sym("b")), "a - b"},
		{"negated symbol", expr.Neg(expr.Sym("x")), "-x"},
		{"negated product", expr.Neg(expr.Mul(expr.Sym("a"), expr.Sym("b"))), "-a*b"},
		{"quotient", expr.Div(expr.Num(1), expr.Sym("eta_d")), "1/eta_d"},
		{"negated quotient", expr.Div(expr.Num(-1), expr.Sym("eta_d")), "-1/eta_d"},
		{"grouped sum in product", expr.Mul(expr.Add(expr.Sym("a"), expr.Sym("b")), expr.Sym("c")), "(a + b)*c"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.v.String())
		})
	}
}
