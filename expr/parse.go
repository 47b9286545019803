package expr

import (
	"fmt"
	"strconv"
)

// Parse builds a Value from conventional infix notation.
//
// Grammar (whitespace-insensitive):
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := NUMBER | IDENT | '(' expr ')' | '-' factor
//
// NUMBER is a decimal float (optional fraction and exponent); IDENT is
// [A-Za-z_][A-Za-z0-9_]* and becomes Sym(IDENT). The result is canonical,
// so Parse("2*3") is Num(6) and Parse("0*eta") is Num(0).
//
// Malformed input fails with ErrParse; the wrapped message carries the
// byte offset. Complexity: O(len(s)).
func Parse(s string) (Value, error) {
	p := &parser{src: s}
	v, err := p.parseSum()
	if err != nil {
		return Value{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return Value{}, p.errorf("trailing input")
	}
	return v, nil
}

// MustParse is Parse for static expressions known to be well-formed; it
// panics on error and is intended for package-level declarations and tests.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("Parse: %s at offset %d: %w", msg, p.pos, ErrParse)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// peek returns the next significant byte, or 0 at end of input.
func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) parseSum() (Value, error) {
	left, err := p.parseTerm()
	if err != nil {
		return Value{}, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return Value{}, err
			}
			left = Add(left, right)
		case '-':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return Value{}, err
			}
			left = Sub(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm() (Value, error) {
	left, err := p.parseFactor()
	if err != nil {
		return Value{}, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parseFactor()
			if err != nil {
				return Value{}, err
			}
			left = Mul(left, right)
		case '/':
			p.pos++
			right, err := p.parseFactor()
			if err != nil {
				return Value{}, err
			}
			left = Div(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseFactor() (Value, error) {
	switch c := p.peek(); {
	case c == '-':
		p.pos++
		v, err := p.parseFactor()
		if err != nil {
			return Value{}, err
		}
		return Neg(v), nil
	case c == '(':
		p.pos++
		v, err := p.parseSum()
		if err != nil {
			return Value{}, err
		}
		if p.peek() != ')' {
			return Value{}, p.errorf("missing ')'")
		}
		p.pos++
		return v, nil
	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()
	case isIdentStart(c):
		return p.parseIdent()
	case c == 0:
		return Value{}, p.errorf("unexpected end of input")
	default:
		return Value{}, p.errorf("unexpected %q", string(c))
	}
}

func (p *parser) parseNumber() (Value, error) {
	start := p.pos
	for p.pos < len(p.src) && (isDigit(p.src[p.pos]) || p.src[p.pos] == '.') {
		p.pos++
	}
	// Optional exponent: e[+-]?digits.
	if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		mark := p.pos
		p.pos++
		if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		if p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
				p.pos++
			}
		} else {
			p.pos = mark // bare "e" belongs to a following identifier, not the number
		}
	}
	f, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return Value{}, p.errorf("bad number %q", p.src[start:p.pos])
	}
	return Num(f), nil
}

func (p *parser) parseIdent() (Value, error) {
	start := p.pos
	p.pos++
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	return Sym(p.src[start:p.pos]), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }
