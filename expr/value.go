package expr

import (
	"sort"
	"strconv"
	"strings"
)

// kind discriminates the variants of the Value union.
type kind uint8

const (
	kindNum kind = iota // concrete float64
	kindSym             // named parameter
	kindAdd             // sum of args (≥2 operands)
	kindMul             // product of args (≥2 operands)
	kindDiv             // args[0] / args[1]
)

// Value is one scalar: a number, a named symbol, or a compound expression.
// The zero Value is the number 0. Values are immutable; every operation
// returns a fresh Value and never mutates its operands.
type Value struct {
	k    kind
	num  float64
	sym  string
	args []Value
}

// Num returns the numeric value f.
func Num(f float64) Value {
	return Value{k: kindNum, num: f}
}

// Sym returns the symbolic parameter with the given name. Names are opaque
// to this package; Parse restricts them to identifier syntax, but Sym
// itself accepts any non-empty string.
func Sym(name string) Value {
	return Value{k: kindSym, sym: name}
}

// IsNumeric reports whether v is a plain number. Canonical construction
// guarantees that any expression free of symbols folds to a number, so
// IsNumeric is equivalent to "contains no symbol".
func (v Value) IsNumeric() bool {
	return v.k == kindNum
}

// IsZero reports whether v is the number 0.
func (v Value) IsZero() bool {
	return v.k == kindNum && v.num == 0
}

// Float64 returns the numeric value and true when v is a plain number,
// and (0, false) otherwise.
func (v Value) Float64() (float64, bool) {
	if v.k != kindNum {
		return 0, false
	}
	return v.num, true
}

// Equal reports structural equality of two canonical values. Two
// expressions built by the same operand sequence compare equal; algebraic
// equivalence under reordering (a+b vs b+a) is intentionally not decided.
//
// Complexity: O(size of the smaller expression tree).
func (v Value) Equal(o Value) bool {
	if v.k != o.k {
		return false
	}
	switch v.k {
	case kindNum:
		return v.num == o.num
	case kindSym:
		return v.sym == o.sym
	default:
		if len(v.args) != len(o.args) {
			return false
		}
		for i := range v.args {
			if !v.args[i].Equal(o.args[i]) {
				return false
			}
		}
		return true
	}
}

// Symbols returns the sorted set of parameter names referenced by v.
// A plain number yields an empty slice.
//
// Complexity: O(n log n) in the number of symbol occurrences.
func (v Value) Symbols() []string {
	seen := make(map[string]struct{})
	v.collectSymbols(seen)
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (v Value) collectSymbols(into map[string]struct{}) {
	switch v.k {
	case kindSym:
		into[v.sym] = struct{}{}
	case kindAdd, kindMul, kindDiv:
		for _, a := range v.args {
			a.collectSymbols(into)
		}
	}
}

// String renders v in conventional infix notation: "0.9", "eta",
// "eta*V + 3", "-1/eta_d". Output is deterministic for a given value and
// round-trips through Parse for values built from parseable symbols.
func (v Value) String() string {
	var b strings.Builder
	v.render(&b, precAdd)
	return b.String()
}

// Precedence levels for parenthesization during rendering.
const (
	precAdd = iota + 1
	precMul
	precUnary
)

func (v Value) precedence() int {
	switch v.k {
	case kindAdd:
		return precAdd
	case kindMul, kindDiv:
		return precMul
	case kindNum:
		if v.num < 0 {
			return precUnary
		}
		return precUnary + 1
	default:
		return precUnary + 1
	}
}

func (v Value) render(b *strings.Builder, outer int) {
	parens := v.precedence() < outer
	if parens {
		b.WriteByte('(')
	}
	switch v.k {
	case kindNum:
		b.WriteString(formatFloat(v.num))
	case kindSym:
		b.WriteString(v.sym)
	case kindAdd:
		for i, a := range v.args {
			if i > 0 {
				if neg, ok := a.negated(); ok {
					b.WriteString(" - ")
					neg.render(b, precMul)
					continue
				}
				b.WriteString(" + ")
			}
			a.render(b, precAdd)
		}
	case kindMul:
		if f, ok := v.args[0].Float64(); ok && f == -1 && len(v.args) > 1 {
			// A -1 coefficient reads as plain negation.
			b.WriteByte('-')
			Mul(v.args[1:]...).render(b, precMul)
			break
		}
		for i, a := range v.args {
			if i > 0 {
				b.WriteByte('*')
			}
			a.render(b, precMul)
		}
	case kindDiv:
		v.args[0].render(b, precMul)
		b.WriteByte('/')
		// Right operand binds tighter: a/(b*c) keeps its parens.
		v.args[1].render(b, precMul+1)
	}
	if parens {
		b.WriteByte(')')
	}
}

// negated reports whether v is a negative term and, if so, returns its
// positive counterpart for "x - y" style rendering.
func (v Value) negated() (Value, bool) {
	switch v.k {
	case kindNum:
		if v.num < 0 {
			return Num(-v.num), true
		}
	case kindMul:
		if f, ok := v.args[0].Float64(); ok && f < 0 {
			rest := append([]Value{Num(-f)}, v.args[1:]...)
			return Mul(rest...), true
		}
	}
	return Value{}, false
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
