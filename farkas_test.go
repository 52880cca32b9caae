// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-air/pdr/z"
)

func TestFarkasConjunction(t *testing.T) {
	c, xs := newIntC("x", "y")
	x, y := xs[0], xs[1]
	core := Core{c.Le(x, c.Int(3)), c.Le(y, c.Int(3))}
	b := c.Ands(core...)
	ip := &fakeIP{lemmas: map[z.Term][]z.Term{b: {c.Le(c.Add(x, y), c.Int(6))}}}
	pt := &fakePT{c: c, prop: c.Ge(x, c.Int(10))}
	n := &fakeNode{pt: pt, level: 1}
	g := NewFarkas(c, fakeAll{}, ip)

	cur := core.Clone()
	ul := false
	g.Generalize(n, &cur, &ul)
	assert.Equal(t, Core{c.Le(c.Add(x, y), c.Int(6))}, cur)
	assert.True(t, ul)
	st := g.Stats()
	assert.Equal(t, int64(1), st.Interpolations)
	assert.Equal(t, int64(1), st.InterpolationsOK)
	assert.Equal(t, int64(1), st.Rewrites)
}

func TestFarkasNoLemma(t *testing.T) {
	c, xs := newIntC("x")
	core := Core{c.Le(xs[0], c.Int(3)), c.Ge(xs[0], c.Int(1))}
	ip := &fakeIP{}
	n := &fakeNode{pt: &fakePT{c: c, prop: c.T}, level: 1}
	g := NewFarkas(c, fakeAll{}, ip)
	cur := core.Clone()
	ul := false
	g.Generalize(n, &cur, &ul)
	assert.Equal(t, core, cur)
	assert.False(t, ul)
	assert.Equal(t, 1, ip.calls)
	assert.Equal(t, int64(0), g.Stats().InterpolationsOK)

	var empty Core
	g.Generalize(n, &empty, &ul)
	assert.Empty(t, empty)
	assert.Equal(t, 1, ip.calls)
}

func TestFarkasDisjuncts(t *testing.T) {
	c, xs := newIntC("x", "y")
	x, y := xs[0], xs[1]
	bx, by := c.Le(x, c.Int(1)), c.Le(y, c.Int(1))
	core := Core{c.Or(bx, by)}
	ip := &fakeIP{lemmas: map[z.Term][]z.Term{bx: {c.Le(x, c.Int(2))}}}
	n := &fakeNode{pt: &fakePT{c: c, prop: c.T}, level: 3}
	g := NewFarkas(c, fakeAll{}, ip)
	cur := core.Clone()
	ul := false
	g.Generalize(n, &cur, &ul)
	assert.Equal(t, Core{c.Or(c.Le(x, c.Int(2)), by)}, cur)
	assert.True(t, ul)
	assert.Equal(t, int64(2), g.Stats().Interpolations)
	assert.Equal(t, int64(1), g.Stats().InterpolationsOK)
}

func TestFarkasTrivialLemma(t *testing.T) {
	c, xs := newIntC("x")
	b := c.Le(xs[0], c.Int(1))
	ip := &fakeIP{lemmas: map[z.Term][]z.Term{b: {}}}
	n := &fakeNode{pt: &fakePT{c: c, prop: c.T}, level: 1}
	cur := Core{b}
	ul := false
	NewFarkas(c, fakeAll{}, ip).Generalize(n, &cur, &ul)
	assert.Equal(t, Core{c.T}, cur)
	assert.True(t, ul)
}
