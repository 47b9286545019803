package expr

import "fmt"

// Eval substitutes every symbol from bindings and computes the numeric
// result. A symbol absent from bindings fails with ErrUnboundSymbol; a
// denominator that evaluates to zero fails with ErrDivisionByZero.
//
// Complexity: O(size of the expression tree). Deterministic: evaluation
// order is the canonical operand order.
func (v Value) Eval(bindings map[string]float64) (float64, error) {
	switch v.k {
	case kindNum:
		return v.num, nil
	case kindSym:
		f, ok := bindings[v.sym]
		if !ok {
			return 0, fmt.Errorf("Eval: symbol %q: %w", v.sym, ErrUnboundSymbol)
		}
		return f, nil
	case kindAdd:
		var sum float64
		for _, a := range v.args {
			f, err := a.Eval(bindings)
			if err != nil {
				return 0, err
			}
			sum += f
		}
		return sum, nil
	case kindMul:
		prod := 1.0
		for _, a := range v.args {
			f, err := a.Eval(bindings)
			if err != nil {
				return 0, err
			}
			prod *= f
		}
		return prod, nil
	default: // kindDiv
		num, err := v.args[0].Eval(bindings)
		if err != nil {
			return 0, err
		}
		den, err := v.args[1].Eval(bindings)
		if err != nil {
			return 0, err
		}
		if den == 0 {
			return 0, fmt.Errorf("Eval: %s: %w", v, ErrDivisionByZero)
		}
		return num / den, nil
	}
}

// Substitute replaces bound symbols with numeric values and re-canonicalizes,
// leaving unbound symbols in place. Substituting every symbol therefore
// folds the expression to a plain number.
//
// Complexity: O(size of the expression tree).
func (v Value) Substitute(bindings map[string]float64) Value {
	switch v.k {
	case kindNum:
		return v
	case kindSym:
		if f, ok := bindings[v.sym]; ok {
			return Num(f)
		}
		return v
	case kindAdd:
		args := make([]Value, len(v.args))
		for i, a := range v.args {
			args[i] = a.Substitute(bindings)
		}
		return Add(args...)
	case kindMul:
		args := make([]Value, len(v.args))
		for i, a := range v.args {
			args[i] = a.Substitute(bindings)
		}
		return Mul(args...)
	default: // kindDiv
		return Div(v.args[0].Substitute(bindings), v.args[1].Substitute(bindings))
	}
}
