package opprec

import (
	"bufio"
	"io"
	"math"
	"math/bits"
	"os"
	"strings"
)

// Load tokenizes each non-blank line of r as an expression.
func Load(r io.Reader) ([]*Expr, error) {
	var exprs []*Expr
	scan := bufio.NewScanner(r)
	scan.Buffer(nil, math.MaxInt)
	n := 0
	for scan.Scan() {
		n++
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e := Tokenize(line)
		e.line = n
		exprs = append(exprs, e)
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return exprs, nil
}

// LoadFile loads expressions from the named file. Failure to open or read the
// file is reported as a *ReadError.
func LoadFile(name string) ([]*Expr, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &ReadError{Path: name, Err: err}
	}
	defer f.Close()
	exprs, err := Load(f)
	if err != nil {
		return nil, &ReadError{Path: name, Err: err}
	}
	return exprs, nil
}

// Sum evaluates every expression under p and returns the total. The first
// error stops the sum and is returned as a *LineError.
func Sum(exprs []*Expr, p Precedence) (uint64, error) {
	var total uint64
	for i, e := range exprs {
		v, err := e.Eval(p)
		if err != nil {
			return 0, e.lineErr(i, err)
		}
		t, carry := bits.Add64(total, v, 0)
		if carry != 0 {
			return 0, e.lineErr(i, &OverflowError{Op: "+"})
		}
		total = t
	}
	return total, nil
}

// lineErr wraps err with e's input line, falling back to its index in the
// input slice.
func (e *Expr) lineErr(i int, err error) error {
	n := e.line
	if n == 0 {
		n = i + 1
	}
	return &LineError{Line: n, Err: err}
}

// Answer is the pair of totals for a set of expressions.
type Answer struct {
	// Part1 is the total under Flat precedence.
	Part1 uint64
	// Part2 is the total under AdditionFirst precedence.
	Part2 uint64
}

// Answer evaluates the expression under both precedence rules.
func (e *Expr) Answer() (Answer, error) {
	var a Answer
	var err error
	if a.Part1, err = e.Eval(Flat); err != nil {
		return Answer{}, err
	}
	if a.Part2, err = e.Eval(AdditionFirst); err != nil {
		return Answer{}, err
	}
	return a, nil
}

// Totals sums exprs under both precedence rules.
func Totals(exprs []*Expr) (Answer, error) {
	return TotalsFunc(exprs, nil)
}

// TotalsFunc sums exprs under both precedence rules, evaluating each
// expression once. If each is not nil, it is called with every expression's
// values before they are added. The first error stops the sum and is
// returned as a *LineError.
func TotalsFunc(exprs []*Expr, each func(e *Expr, a Answer)) (Answer, error) {
	var t Answer
	for i, e := range exprs {
		a, err := e.Answer()
		if err != nil {
			return Answer{}, e.lineErr(i, err)
		}
		if each != nil {
			each(e, a)
		}
		p1, c1 := bits.Add64(t.Part1, a.Part1, 0)
		p2, c2 := bits.Add64(t.Part2, a.Part2, 0)
		if c1|c2 != 0 {
			return Answer{}, e.lineErr(i, &OverflowError{Op: "+"})
		}
		t = Answer{Part1: p1, Part2: p2}
	}
	return t, nil
}
