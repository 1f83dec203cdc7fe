package opprec

import (
	"math/bits"
	"strconv"
	"strings"
)

// Precedence selects the rules used to evaluate an expression.
type Precedence int8

const (
	// Flat gives + and * equal precedence, applied left to right.
	Flat Precedence = iota
	// AdditionFirst makes + bind more tightly than *.
	AdditionFirst
)

func (p Precedence) String() string {
	switch p {
	case Flat:
		return "flat"
	case AdditionFirst:
		return "addition-first"
	default:
		return "Precedence(" + strconv.Itoa(int(p)) + ")"
	}
}

// Eval evaluates the expression under the given precedence rules. Errors
// describing malformed input implement InputError.
func (e *Expr) Eval(p Precedence) (uint64, error) {
	c := cursor{e: e}
	switch p {
	case Flat:
		return c.flat(0)
	case AdditionFirst:
		v, err := c.product()
		if err != nil {
			return 0, err
		}
		switch tok := c.peek(); tok.kind {
		case tokenEOF:
			return v, nil
		case tokenClose:
			return 0, &BracketError{Col: tok.col, Right: ")"}
		case tokenInvalid:
			return 0, unexpected(tok)
		default:
			return 0, &TrailingError{Col: tok.col, Rest: c.rest()}
		}
	default:
		panic("opprec: invalid precedence " + p.String())
	}
}

// cursor is a read position in an expression. It only moves forward.
type cursor struct {
	e *Expr
	i int
}

// peek returns the next token without consuming it. At the end of the
// expression, the result is an EOF token.
func (c *cursor) peek() token {
	if c.i >= len(c.e.toks) {
		return token{kind: tokenEOF, col: c.e.end}
	}
	return c.e.toks[c.i]
}

// next consumes and returns the next token. EOF is never consumed.
func (c *cursor) next() token {
	tok := c.peek()
	if tok.kind != tokenEOF {
		c.i++
	}
	return tok
}

// rest formats the unconsumed tokens.
func (c *cursor) rest() string {
	var b strings.Builder
	for _, tok := range c.e.toks[c.i:] {
		b.WriteRune(tok.r)
	}
	return b.String()
}

// flat evaluates a group with all operators applied left to right. depth is
// the number of open brackets enclosing the group. A close bracket ends the
// group and is consumed here.
func (c *cursor) flat(depth int) (uint64, error) {
	lhs, err := c.flatterm(depth)
	if err != nil {
		return 0, err
	}
	for {
		tok := c.next()
		switch tok.kind {
		case tokenPlus, tokenTimes:
			rhs, err := c.flatterm(depth)
			if err != nil {
				return 0, err
			}
			lhs, err = apply(tok, lhs, rhs)
			if err != nil {
				return 0, err
			}
		case tokenClose:
			if depth == 0 {
				return 0, &BracketError{Col: tok.col, Right: ")"}
			}
			return lhs, nil
		case tokenEOF:
			if depth > 0 {
				return 0, &BracketError{Col: tok.col, Left: "("}
			}
			return lhs, nil
		default:
			return 0, unexpected(tok)
		}
	}
}

func (c *cursor) flatterm(depth int) (uint64, error) {
	tok := c.next()
	switch tok.kind {
	case tokenDigit:
		return tok.value(), nil
	case tokenOpen:
		return c.flat(depth + 1)
	default:
		return 0, unexpected(tok)
	}
}

// product evaluates sums joined by *.
func (c *cursor) product() (uint64, error) {
	lhs, err := c.sum()
	if err != nil {
		return 0, err
	}
	for c.peek().kind == tokenTimes {
		op := c.next()
		rhs, err := c.sum()
		if err != nil {
			return 0, err
		}
		lhs, err = apply(op, lhs, rhs)
		if err != nil {
			return 0, err
		}
	}
	return lhs, nil
}

// sum evaluates terms joined by +. The right operand of each + is itself a
// sum, so the loop runs at most once per call.
func (c *cursor) sum() (uint64, error) {
	lhs, err := c.term()
	if err != nil {
		return 0, err
	}
	for c.peek().kind == tokenPlus {
		op := c.next()
		rhs, err := c.sum()
		if err != nil {
			return 0, err
		}
		lhs, err = apply(op, lhs, rhs)
		if err != nil {
			return 0, err
		}
	}
	return lhs, nil
}

// term evaluates a digit or a bracketed product.
func (c *cursor) term() (uint64, error) {
	tok := c.next()
	switch tok.kind {
	case tokenDigit:
		return tok.value(), nil
	case tokenOpen:
		v, err := c.product()
		if err != nil {
			return 0, err
		}
		switch end := c.next(); end.kind {
		case tokenClose:
			return v, nil
		case tokenEOF:
			return 0, &BracketError{Col: end.col, Left: "("}
		default:
			return 0, unexpected(end)
		}
	default:
		return 0, unexpected(tok)
	}
}

// apply combines two values with an operator token.
func apply(op token, x, y uint64) (uint64, error) {
	var r, hi uint64
	switch op.kind {
	case tokenPlus:
		r, hi = bits.Add64(x, y, 0)
	case tokenTimes:
		hi, r = bits.Mul64(x, y)
	default:
		panic("opprec: apply with non-operator " + op.String())
	}
	if hi != 0 {
		return 0, &OverflowError{Col: op.col, Op: string(op.r)}
	}
	return r, nil
}

func unexpected(tok token) error {
	if tok.kind == tokenEOF {
		return &TokenError{Col: tok.col}
	}
	return &TokenError{Col: tok.col, Token: string(tok.r)}
}
