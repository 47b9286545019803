package expr

// Arithmetic constructors. Each applies light canonicalization on the way
// in — constant folding, flattening of nested sums/products, identity and
// annihilator elision — so that an expression over numbers alone is always
// a plain Num, and structural equality is meaningful for values built by
// identical operand sequences.

// Add returns the sum of the operands. Nested sums are flattened, numeric
// operands are folded into a single trailing constant, and zero terms are
// dropped. Add() with no operands is Num(0).
//
// Complexity: O(total operand count).
func Add(vs ...Value) Value {
	var c float64
	terms := make([]Value, 0, len(vs))
	for _, v := range vs {
		switch v.k {
		case kindNum:
			c += v.num
		case kindAdd:
			for _, a := range v.args {
				if a.k == kindNum {
					c += a.num
				} else {
					terms = append(terms, a)
				}
			}
		default:
			terms = append(terms, v)
		}
	}
	if c != 0 {
		terms = append(terms, Num(c))
	}
	switch len(terms) {
	case 0:
		return Num(0)
	case 1:
		return terms[0]
	}
	return Value{k: kindAdd, args: terms}
}

// Sub returns a − b.
func Sub(a, b Value) Value {
	return Add(a, Neg(b))
}

// Mul returns the product of the operands. Nested products are flattened,
// numeric operands fold into a single leading coefficient, a zero operand
// annihilates the whole product, and a coefficient of 1 is elided. Mul()
// with no operands is Num(1).
//
// Complexity: O(total operand count).
func Mul(vs ...Value) Value {
	c := 1.0
	factors := make([]Value, 0, len(vs))
	for _, v := range vs {
		switch v.k {
		case kindNum:
			c *= v.num
		case kindMul:
			for _, a := range v.args {
				if a.k == kindNum {
					c *= a.num
				} else {
					factors = append(factors, a)
				}
			}
		default:
			factors = append(factors, v)
		}
	}
	if c == 0 {
		return Num(0)
	}
	if len(factors) == 0 {
		return Num(c)
	}
	if c != 1 {
		factors = append([]Value{Num(c)}, factors...)
	}
	if len(factors) == 1 {
		return factors[0]
	}
	return Value{k: kindMul, args: factors}
}

// Neg returns −a.
func Neg(a Value) Value {
	return Mul(Num(-1), a)
}

// Div returns a / b. A numeric denominator b ≠ 0 folds into a coefficient
// (a numeric a gives a plain number, a symbolic a gives (1/b)*a, so chains
// of scalings collapse); a numeric zero numerator yields Num(0). Symbolic
// denominators are taken to be nonzero — an actually-zero denominator
// surfaces as ErrDivisionByZero at Eval time, never at construction.
func Div(a, b Value) Value {
	if f, ok := b.Float64(); ok && f != 0 {
		if g, ok := a.Float64(); ok {
			return Num(g / f)
		}
		if f == 1 {
			return a
		}
		return Mul(Num(1/f), a)
	}
	if a.IsZero() && !b.IsZero() {
		return Num(0)
	}
	return Value{k: kindDiv, args: []Value{a, b}}
}
