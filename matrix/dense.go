package matrix

import (
	"fmt"
	"sort"
	"strings"

	"github.com/meshub/meshub/expr"
)

// Dense is a row-major matrix of expr.Value entries.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// A fresh Dense is all zeros (the zero expr.Value is the number 0).
type Dense struct {
	r, c int
	data []expr.Value
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// New creates an r×c Dense initialized to zeros. Zero-sized shapes are
// legal; negative dimensions fail with ErrInvalidDimensions.
//
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	return &Dense{r: rows, c: cols, data: make([]expr.Value, rows*cols)}, nil
}

// FromRows builds a Dense from row slices. All rows must share one length;
// ragged input fails with ErrDimensionMismatch. An empty outer slice yields
// a 0×0 matrix. The input slices are copied, never retained.
//
// Complexity: O(r*c).
func FromRows(rows [][]expr.Value) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])
	m := &Dense{r: len(rows), c: c, data: make([]expr.Value, 0, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		m.data = append(m.data, row...)
	}
	return m, nil
}

// FromFloats builds a Dense of numeric entries from float64 row slices,
// with the same shape rules as FromRows.
func FromFloats(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])
	m := &Dense{r: len(rows), c: c, data: make([]expr.Value, 0, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromFloats: row %d has %d entries, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		for _, f := range row {
			m.data = append(m.data, expr.Num(f))
		}
	}
	return m, nil
}

// Must unwraps a constructor result and panics on error. Use it for
// statically known shapes: matrix.Must(matrix.New(3, n)).
func Must(m *Dense, err error) *Dense {
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the n×n identity matrix. n may be zero.
func Identity(n int) (*Dense, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = expr.Num(1)
	}
	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// IsEmpty reports whether the matrix has no entries (zero rows or columns).
func (m *Dense) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// indexOf computes the flat index for (row, col), bounds-checked.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (expr.Value, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return expr.Value{}, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v expr.Value) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// AddAt accumulates v into the element at (row, col): m[row,col] += v.
// Assembly uses it when several local contributions land on one global
// cell. Complexity: O(1) plus the cost of the sum canonicalization.
func (m *Dense) AddAt(row, col int, v expr.Value) error {
	idx, err := m.indexOf("AddAt", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = expr.Add(m.data[idx], v)
	return nil
}

// Clone returns a deep, independent copy. expr.Value entries are immutable,
// so copying the backing slice fully detaches the clone.
//
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]expr.Value, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Equal reports shape equality plus entry-wise structural equality (see
// expr.Value.Equal for what "structural" means). A nil operand is only
// equal to a nil receiver.
//
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}
	return true
}

// IsNumeric reports whether every entry is a plain number.
// Complexity: O(r*c).
func (m *Dense) IsNumeric() bool {
	for _, v := range m.data {
		if !v.IsNumeric() {
			return false
		}
	}
	return true
}

// Symbols returns the sorted union of parameter names over all entries.
func (m *Dense) Symbols() []string {
	seen := make(map[string]struct{})
	for _, v := range m.data {
		for _, s := range v.Symbols() {
			seen[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// String renders the matrix one row per line, entries space-separated in
// brackets: "[eta -1 0]". Deterministic for a given matrix.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	if m.r == 0 || m.c == 0 {
		return fmt.Sprintf("[%dx%d]", m.r, m.c)
	}
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m.data[i*m.c+j].String())
		}
		b.WriteByte(']')
		if i < m.r-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
