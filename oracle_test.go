package opprec_test

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/Knetic/govaluate"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/opprec"
)

// chain is an expression with no brackets: digits[i] is followed by ops[i].
type chain struct {
	digits []int
	ops    []byte
}

func randchain(rng *rand.Rand) chain {
	n := 1 + rng.Intn(8)
	c := chain{digits: make([]int, n), ops: make([]byte, n-1)}
	for i := range c.digits {
		c.digits[i] = rng.Intn(10)
	}
	for i := range c.ops {
		c.ops[i] = "+*"[rng.Intn(2)]
	}
	return c
}

func (c chain) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(c.digits[0]))
	for i, op := range c.ops {
		b.WriteByte(' ')
		b.WriteByte(op)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(c.digits[i+1]))
	}
	return b.String()
}

// leftNested brackets every operation so that conventional precedence
// applies operators left to right.
func (c chain) leftNested() string {
	s := strconv.Itoa(c.digits[0])
	for i, op := range c.ops {
		s = "(" + s + " " + string(op) + " " + strconv.Itoa(c.digits[i+1]) + ")"
	}
	return s
}

// sumsGrouped brackets every maximal run of additions so that conventional
// precedence reduces sums before products.
func (c chain) sumsGrouped() string {
	return "(" + strings.ReplaceAll(c.String(), " * ", ") * (") + ")"
}

func conventional(t *testing.T, src string) uint64 {
	t.Helper()
	ex, err := govaluate.NewEvaluableExpression(src)
	require.NoError(t, err, src)
	r, err := ex.Evaluate(nil)
	require.NoError(t, err, src)
	f, ok := r.(float64)
	require.True(t, ok, "%s evaluated to %T", src, r)
	return uint64(f)
}

func TestEvalMatchesConventional(t *testing.T) {
	rng := rand.New(rand.NewSource(18))
	for i := 0; i < 500; i++ {
		c := randchain(rng)
		e := opprec.Tokenize(c.String())
		flat, err := e.Eval(opprec.Flat)
		require.NoError(t, err, c.String())
		addfirst, err := e.Eval(opprec.AdditionFirst)
		require.NoError(t, err, c.String())
		assert.Equal(t, conventional(t, c.leftNested()), flat, "flat %s\n%s", c, spew.Sdump(e))
		assert.Equal(t, conventional(t, c.sumsGrouped()), addfirst, "addition-first %s\n%s", c, spew.Sdump(e))
	}
}

func TestConventionalDiffers(t *testing.T) {
	// Neither rule is the usual one.
	src := "2 * 3 + 4"
	e := opprec.Tokenize(src)
	usual := conventional(t, src)
	flat, err := e.Eval(opprec.Flat)
	require.NoError(t, err)
	addfirst, err := e.Eval(opprec.AdditionFirst)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), usual)
	assert.Equal(t, usual, flat)
	assert.NotEqual(t, usual, addfirst)

	src = "2 + 3 * 4"
	e = opprec.Tokenize(src)
	flat, err = e.Eval(opprec.Flat)
	require.NoError(t, err)
	assert.NotEqual(t, conventional(t, src), flat)
}
