package expr

import "errors"

// ErrParse reports malformed expression text handed to Parse.
// Usage: if errors.Is(err, ErrParse) { /* reject the input string */ }.
var ErrParse = errors.New("expr: invalid expression")

// ErrUnboundSymbol reports an Eval call whose bindings are missing a symbol
// referenced by the expression. The wrapped message names the symbol.
// Usage: if errors.Is(err, ErrUnboundSymbol) { /* supply the parameter */ }.
var ErrUnboundSymbol = errors.New("expr: unbound symbol")

// ErrDivisionByZero reports a quotient whose denominator evaluated to zero.
// Construction never divides; the error surfaces only at Eval time.
var ErrDivisionByZero = errors.New("expr: division by zero")
