// Package expr provides the scalar value type used throughout meshub:
// a small, immutable union of plain numbers and symbolic expressions
// over named parameters.
//
// 🚀 What is expr?
//
//	Matrix entries in an energy hub model are either concrete numbers
//	(eta = 0.9) or named parameters left symbolic until a later stage
//	(eta_q, cop_hp). expr.Value carries both through the exact same
//	arithmetic, so the assembly pipeline never branches on "numeric or
//	symbolic":
//		• Num(0.9), Sym("eta_q")        — leaves
//		• Add, Sub, Mul, Div, Neg       — compound expressions
//		• Parse("1 - eta/2")            — the same algebra from text
//		• Eval(bindings)                — collapse to float64 at the end
//
// ✨ Guarantees
//
//   - Immutability: a Value is never modified after construction; sharing
//     across goroutines needs no synchronization.
//   - Canonical construction: constructors fold constants, flatten nested
//     sums/products and drop identity operands, so an all-numeric
//     expression is always a plain number (IsNumeric reports true).
//   - Determinism: the same construction sequence yields structurally
//     identical values; Equal is structural equality over that canonical
//     form (it does not prove algebraic equivalence across reorderings).
//
// ⚙️ Quick example
//
//	eta := expr.Sym("eta")
//	row := expr.Sub(expr.Mul(eta, expr.Sym("V_in")), expr.Sym("V_out"))
//	v, err := row.Eval(map[string]float64{"eta": 0.9, "V_in": 10, "V_out": 9})
//	// v == 0, err == nil
//
// Evaluation of an unbound symbol fails with ErrUnboundSymbol; division by
// a zero denominator fails with ErrDivisionByZero; Parse rejects malformed
// input with ErrParse. No function in this package panics.
package expr
