package opprec

import "strconv"

// TokenError is an error indicating a token where a digit, operator, or
// bracket was expected, or the end of the expression where a term was
// required. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the offending token, or the empty string at the end of the
	// expression.
	Token string
}

func (err *TokenError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, "unexpected end of expression")
	}
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses. It implements
// InputError.
type BracketError struct {
	// Col is the position of the token that revealed the imbalance: the
	// stray close bracket, or the end of the expression.
	Col int
	// Left is the open bracket that was never closed, if any.
	Left string
	// Right is the close bracket that has no open bracket, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating that a complete expression was
// followed by more tokens. It implements InputError.
type TrailingError struct {
	// Col is the position of the first unconsumed token.
	Col int
	// Rest is the unconsumed input.
	Rest string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "input not fully consumed: "+strconv.Quote(err.Rest))
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// OverflowError is an error indicating that an operation exceeded the range
// of uint64. It implements InputError.
type OverflowError struct {
	// Col is the position of the operator, or 0 if the overflow happened
	// while summing results.
	Col int
	// Op is the operator that overflowed.
	Op string
}

func (err *OverflowError) Error() string {
	return errpos(err.Col, "uint64 overflow at "+err.Op)
}

func (err *OverflowError) Pos() int {
	return err.Col
}

// LineError annotates an evaluation error with the input line of the
// expression that caused it.
type LineError struct {
	// Line is the 1-based input line.
	Line int
	// Err is the evaluation error.
	Err error
}

func (err *LineError) Error() string {
	return "line " + strconv.Itoa(err.Line) + ": " + err.Err.Error()
}

func (err *LineError) Unwrap() error {
	return err.Err
}

// ReadError is an error indicating that the input could not be read.
type ReadError struct {
	// Path names the input.
	Path string
	// Err is the underlying error.
	Err error
}

func (err *ReadError) Error() string {
	return "reading " + err.Path + ": " + err.Err.Error()
}

func (err *ReadError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// a malformed expression implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column, counted in runes, of the token that
	// caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*OverflowError)(nil)
)
