package opprec

import (
	"strconv"
	"strings"
	"unicode"
)

type token struct {
	kind tokenKind
	r    rune
	col  int
}

func (t token) String() string {
	return t.kind.String() + ":" + string(t.r) + "@" + strconv.Itoa(t.col)
}

// value is the numeric value of a digit token.
func (t token) value() uint64 {
	return uint64(t.r - '0')
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF is the end of the expression. It is never stored in an Expr.
	tokenEOF
	// tokenDigit is a single decimal digit.
	tokenDigit
	tokenPlus
	tokenTimes
	tokenOpen
	tokenClose
	// tokenInvalid is any other non-space rune. The tokenizer keeps these so
	// that evaluation can report them with their columns.
	tokenInvalid
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

func classify(r rune) tokenKind {
	switch {
	case '0' <= r && r <= '9':
		return tokenDigit
	case r == '+':
		return tokenPlus
	case r == '*':
		return tokenTimes
	case r == '(':
		return tokenOpen
	case r == ')':
		return tokenClose
	default:
		return tokenInvalid
	}
}

// Expr is a tokenized expression. It is never modified after Tokenize
// returns, so it is safe to evaluate concurrently and repeatedly.
type Expr struct {
	toks []token
	// end is the column just past the last rune of the source line.
	end int
	// line is the 1-based input line, or 0 if the expression was not loaded
	// from an input.
	line int
}

// Tokenize splits a line into tokens, discarding whitespace. Tokenize never
// fails; runes that are not part of the expression grammar are reported when
// the expression is evaluated.
func Tokenize(line string) *Expr {
	e := Expr{toks: make([]token, 0, len(line))}
	col := 0
	for _, r := range line {
		col++
		if unicode.IsSpace(r) {
			continue
		}
		e.toks = append(e.toks, token{kind: classify(r), r: r, col: col})
	}
	e.end = col + 1
	return &e
}

// Len returns the number of tokens in the expression.
func (e *Expr) Len() int {
	return len(e.toks)
}

// Line returns the input line the expression was loaded from, or 0 if it
// was created directly with Tokenize.
func (e *Expr) Line() int {
	return e.line
}

// String formats the expression with single spaces around operators.
func (e *Expr) String() string {
	var b strings.Builder
	for _, tok := range e.toks {
		switch tok.kind {
		case tokenPlus, tokenTimes:
			b.WriteByte(' ')
			b.WriteRune(tok.r)
			b.WriteByte(' ')
		default:
			b.WriteRune(tok.r)
		}
	}
	return b.String()
}
