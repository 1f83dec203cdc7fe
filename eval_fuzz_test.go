package opprec_test

import (
	"testing"

	"github.com/zephyrtronium/opprec"
)

func FuzzEval(f *testing.F) {
	f.Add("1 + 2 * 3")
	f.Add("((2 + 4 * 9) * (6 + 9 * 8 + 6) + 6) + 2 + 4 * 2")
	f.Add("(1 +")
	f.Add("1)×2")
	f.Fuzz(func(t *testing.T, s string) {
		e := opprec.Tokenize(s)
		for _, p := range []opprec.Precedence{opprec.Flat, opprec.AdditionFirst} {
			a, aerr := e.Eval(p)
			b, berr := e.Eval(p)
			if a != b || (aerr == nil) != (berr == nil) {
				t.Errorf("%q under %v: got %d, %v then %d, %v", s, p, a, aerr, b, berr)
			}
			if aerr != nil {
				if _, ok := aerr.(opprec.InputError); !ok {
					t.Errorf("%q under %v: %T is not an InputError", s, p, aerr)
				}
			}
		}
	})
}
