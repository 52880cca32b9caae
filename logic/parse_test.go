// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

func newXY() *logic.C {
	c := logic.NewC()
	c.Const("x", z.SortInt)
	c.Const("y", z.SortInt)
	c.Const("r", z.SortReal)
	c.Const("b", z.SortBool)
	c.Declare("p", z.SortBool, z.SortInt, z.SortInt)
	return c
}

func TestParsePrintRoundTrip(t *testing.T) {
	c := newXY()
	for _, s := range []string{
		"(<= x 4)",
		"(not (>= x (- 3)))",
		"(= (mod x 2) 0)",
		"(and b (or (< x y) (> r 2.5)))",
		"(+ x (* 3 y) 1)",
		"(= r (/ 1 2))",
		"(p x y)",
		"(exists (Int Int) (and (p ?0 ?1) (<= ?1 x)))",
		"(forall (Int) (=> (p ?0 ?0) (exists (Int) (p ?0 ?1))))",
	} {
		m, err := c.Parse(s)
		require.NoError(t, err, s)
		back, err := c.Parse(c.String(m))
		require.NoError(t, err, c.String(m))
		assert.Equal(t, m, back, "round trip of %s via %s", s, c.String(m))
	}
}

func TestParseFreeVars(t *testing.T) {
	c := newXY()
	m, err := c.Parse("(<= ?0 ?1)", z.SortInt, z.SortInt)
	require.NoError(t, err)
	assert.Equal(t, []z.Sort{z.SortInt, z.SortInt}, c.FreeVars(m))
	_, err = c.Parse("(<= ?0 ?1)", z.SortInt)
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	c := newXY()
	for _, s := range []string{
		"(<= x",
		"(<= x 4))",
		"(<= b 4)",
		"(not x)",
		"(q x)",
		"(p x)",
		"(* x y)",
		"(mod r 2)",
		"(exists (Foo) true)",
		"zz",
	} {
		_, err := c.Parse(s)
		assert.Error(t, err, s)
	}
	assert.Panics(t, func() { c.MustParse("(") })
}
