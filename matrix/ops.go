package matrix

import (
	"fmt"

	"github.com/meshub/meshub/expr"
)

// VStack concatenates the operands top to bottom. Every operand must share
// one column count; zero-row operands are skipped (they carry no column
// information when their width is zero, and a 0×c operand must still match
// c). VStack() of nothing, or of only empty matrices, yields a 0×0 matrix.
//
// Column disagreement fails with ErrDimensionMismatch, a nil operand with
// ErrNilMatrix. Complexity: O(total entries).
func VStack(ms ...*Dense) (*Dense, error) {
	cols := -1
	rows := 0
	for i, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("VStack: operand %d: %w", i, ErrNilMatrix)
		}
		if m.r == 0 && m.c == 0 {
			continue
		}
		if cols == -1 {
			cols = m.c
		} else if m.c != cols {
			return nil, fmt.Errorf("VStack: operand %d has %d columns, want %d: %w", i, m.c, cols, ErrDimensionMismatch)
		}
		rows += m.r
	}
	if cols == -1 {
		return &Dense{}, nil
	}
	out := &Dense{r: rows, c: cols, data: make([]expr.Value, 0, rows*cols)}
	for _, m := range ms {
		if m.r == 0 {
			continue
		}
		out.data = append(out.data, m.data...)
	}
	return out, nil
}

// Mul returns the product a·b. Shapes must chain (a.Cols == b.Rows);
// mismatch fails with ErrDimensionMismatch, nil operands with ErrNilMatrix.
// Entries combine through expr arithmetic, so numeric operands fold and
// symbolic operands build expression sums in deterministic column order.
//
// Complexity: O(a.Rows × a.Cols × b.Cols) entry combinations.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Mul: %w", ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out := &Dense{r: a.r, c: b.c, data: make([]expr.Value, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			terms := make([]expr.Value, 0, a.c)
			for k := 0; k < a.c; k++ {
				terms = append(terms, expr.Mul(a.data[i*a.c+k], b.data[k*b.c+j]))
			}
			out.data[i*b.c+j] = expr.Add(terms...)
		}
	}
	return out, nil
}

// Scale returns a copy of m with every entry multiplied by v.
//
// Complexity: O(r*c).
func (m *Dense) Scale(v expr.Value) *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]expr.Value, len(m.data))}
	for i, e := range m.data {
		out.data[i] = expr.Mul(v, e)
	}
	return out
}

// Substitute returns a copy of m with bound symbols replaced by numbers;
// unbound symbols survive. Substituting every symbol yields a numeric
// matrix (IsNumeric reports true).
//
// Complexity: O(total expression size).
func (m *Dense) Substitute(bindings map[string]float64) *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]expr.Value, len(m.data))}
	for i, e := range m.data {
		out.data[i] = e.Substitute(bindings)
	}
	return out
}

// Eval substitutes bindings and requires the result to be fully numeric,
// returning the collapsed matrix. An entry left symbolic surfaces the
// underlying expr evaluation error (ErrUnboundSymbol and friends) wrapped
// with its position.
func (m *Dense) Eval(bindings map[string]float64) (*Dense, error) {
	out := &Dense{r: m.r, c: m.c, data: make([]expr.Value, len(m.data))}
	for i, e := range m.data {
		f, err := e.Eval(bindings)
		if err != nil {
			return nil, fmt.Errorf("Eval(%d,%d): %w", i/max(m.c, 1), i%max(m.c, 1), err)
		}
		out.data[i] = expr.Num(f)
	}
	return out, nil
}
