// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bounds

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

func newC() *logic.C {
	c := logic.NewC()
	c.Const("x", z.SortInt)
	c.Const("y", z.SortInt)
	c.Const("r", z.SortReal)
	return c
}

func parseAll(c *logic.C, ss ...string) []z.Term {
	res := make([]z.Term, len(ss))
	for i, s := range ss {
		res[i] = c.MustParse(s)
	}
	return res
}

func TestExtractShapes(t *testing.T) {
	c := newC()
	x := c.MustParse("x")
	core := parseAll(c,
		"(not (<= x 3))", // x >= 4
		"(not (>= x 5))", // x <= 4
		"(<= y 7)",
		"(>= y 7)",
		"(<= r 7)", // real, ignored
		"(<= x y)", // not a numeral bound
	)
	idx := New(c)
	idx.Extract(core)
	four := big.NewRat(4, 1)
	require.Len(t, idx.Lower(four), 1)
	require.Len(t, idx.Upper(four), 1)
	lo := idx.Lower(four)[0]
	assert.Equal(t, x, lo.Term)
	assert.Equal(t, "4", lo.Value.RatString())
	assert.Equal(t, 0, lo.Index)
	assert.True(t, lo.Lower)
	assert.Equal(t, 1, idx.Upper(four)[0].Index)
	assert.Len(t, idx.Lower(big.NewRat(7, 1)), 1)
	assert.Len(t, idx.Upper(big.NewRat(7, 1)), 1)

	eqs := idx.Eqs()
	require.Len(t, eqs, 2)
	assert.Equal(t, x, eqs[0].Term)
	assert.Equal(t, "4", eqs[0].Value.RatString())
	assert.Equal(t, 0, eqs[0].K)
	assert.Equal(t, 1, eqs[0].L)
	assert.Equal(t, c.MustParse("y"), eqs[1].Term)
	assert.Equal(t, 2, eqs[1].L)
	assert.Equal(t, 3, eqs[1].K)
}

func TestNegativeBoundsFlip(t *testing.T) {
	c := newC()
	x := c.MustParse("x")
	idx := New(c)
	idx.Extract(parseAll(c, "(<= x (- 3))", "(>= x (- 3))"))
	// x <= -3 is recorded as -x >= 3, x >= -3 as -x <= 3
	three := big.NewRat(3, 1)
	require.Len(t, idx.Lower(three), 1)
	assert.Equal(t, c.Neg(x), idx.Lower(three)[0].Term)
	eqs := idx.Eqs()
	require.Len(t, eqs, 1)
	assert.Equal(t, c.Neg(x), eqs[0].Term)
	assert.Equal(t, 0, eqs[0].K)
	assert.Equal(t, 1, eqs[0].L)
}

func TestEqsSmallValuesAndRewriting(t *testing.T) {
	c := newC()
	idx := New(c)
	idx.Extract(parseAll(c, "(>= x 1)", "(<= x 1)"))
	assert.Empty(t, idx.Eqs(), "magnitude below 2")

	idx.Reset()
	idx.Extract(parseAll(c, "(>= (+ x y) 2)", "(<= (+ y x) 2)"))
	eqs := idx.Eqs()
	require.Len(t, eqs, 1, "terms equal under rewriting")
	assert.Equal(t, c.MustParse("(+ x y)"), eqs[0].Term)

	idx.Reset()
	idx.Extract(parseAll(c, "(>= x 2)", "(<= y 2)"))
	assert.Empty(t, idx.Eqs(), "different terms")
}

func TestAlias(t *testing.T) {
	c := newC()
	x := c.MustParse("x")
	four := big.NewRat(4, 1)
	e, ok := Alias(c, four, x, c.MustParse("(<= y 4)"))
	require.True(t, ok)
	assert.Equal(t, c.MustParse("(<= y x)"), e)
	e, ok = Alias(c, four, x, c.MustParse("(not (>= y 4))"))
	require.True(t, ok)
	assert.Equal(t, c.MustParse("(not (>= y x))"), e)
	_, ok = Alias(c, four, x, c.MustParse("(<= y 5)"))
	assert.False(t, ok)
	_, ok = Alias(c, four, x, c.MustParse("(= y 4)"))
	assert.False(t, ok)
}
