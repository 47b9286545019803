// Package matrix implements the dense matrix substrate for energy hub
// assembly: row-major matrices whose entries are expr.Value scalars, so a
// single representation carries purely numeric, purely symbolic and mixed
// matrices through identical code paths.
//
// 🚀 What lives here
//
//	• Dense           — row-major r×c matrix of expr.Value (zero-row legal)
//	• New / FromRows / FromFloats / Identity — constructors
//	• At / Set / AddAt — bounds-checked element access
//	• VStack / Mul / Scale — the operations assembly and analysis need
//	• Eval / Substitute  — numeric collapse under parameter bindings
//	• Float64s / ToMat   — export to [][]float64 and gonum mat.Dense
//
// ✨ Conventions
//
//   - Zero-row matrices are first-class: a component with no internal
//     constraint contributes an empty characteristic matrix, and VStack
//     treats it as the identity of concatenation.
//   - All failure modes are sentinel errors (errors.Is-friendly); methods
//     never panic on user input.
//   - Dense values are mutable until handed off; callers that publish a
//     matrix clone it first (the hub package does exactly that).
//
// The gonum export covers the numeric fast path consumed by downstream
// analysis; symbolic matrices refuse export with ErrSymbolicEntry rather
// than silently coercing, per the assembly contract.
package matrix
