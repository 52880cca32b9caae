// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

// counter builds the system
//
//	p(0).
//	p(y) <- p(x), y = x + 1
func counter(t *testing.T) (*logic.C, *fakePT, fakeAll) {
	c := logic.NewC()
	d := c.Declare("p", z.SortBool, z.SortInt)
	init := &inter.Rule{Head: c.MustParse("(p 0)")}
	step := &inter.Rule{
		Head: c.MustParse("(p ?1)", z.SortInt, z.SortInt),
		Tail: []z.Term{
			c.MustParse("(p ?0)", z.SortInt, z.SortInt),
			c.MustParse("(= ?1 (+ ?0 1))", z.SortInt, z.SortInt)},
		Uninterp: 1}
	pt := &fakePT{
		c:         c,
		head:      d,
		sigs:      []z.Term{c.Const("p!0", z.SortInt)},
		rules:     []*inter.Rule{init, step},
		inductive: func([]z.Term) bool { return true }}
	return c, pt, fakeAll{d: pt}
}

func TestInductionRootNoop(t *testing.T) {
	c, pt, all := counter(t)
	k := &fakeChecker{res: inter.Unsat}
	g := NewInduction(c, all, func() inter.Checker { return k })
	core := Core{c.Le(pt.sigs[0], c.Int(-1))}
	cur := core.Clone()
	for _, ul := range []bool{false, true} {
		u := ul
		g.Generalize(&fakeNode{pt: pt, level: 3}, &cur, &u)
		assert.Equal(t, core, cur)
		assert.Equal(t, ul, u)
	}
	assert.Equal(t, 0, k.calls)
}

func TestInductionUnsat(t *testing.T) {
	c, pt, all := counter(t)
	k := &fakeChecker{res: inter.Unsat}
	g := NewInduction(c, all, func() inter.Checker { return k })
	parent := &fakeNode{pt: pt, level: 2}
	n := &fakeNode{pt: pt, level: 1, parent: parent}
	cur := Core{c.Le(pt.sigs[0], c.Int(-1)), c.T}
	ul := false
	g.Generalize(n, &cur, &ul)
	require.Len(t, cur, 1)
	assert.Equal(t, c.Not(g.blocked(pt, 2)), cur[0])
	assert.True(t, ul)
	assert.Equal(t, 1, k.calls)
	assert.Equal(t, int64(1), g.Stats().Rewrites)

	for _, name := range []string{"p_0", "p_1", "p_2"} {
		_, ok := c.LookupDecl(name)
		assert.True(t, ok, name)
	}
	_, ok := c.LookupDecl("p_3")
	assert.False(t, ok)
}

func TestInductionInconclusive(t *testing.T) {
	c, pt, all := counter(t)
	for _, res := range []inter.Result{inter.Sat, inter.Unknown} {
		k := &fakeChecker{res: res}
		g := NewInduction(c, all, func() inter.Checker { return k })
		n := &fakeNode{pt: pt, level: 1, parent: &fakeNode{pt: pt, level: 1}}
		core := Core{c.Ge(pt.sigs[0], c.Int(5))}
		cur := core.Clone()
		ul := false
		g.Generalize(n, &cur, &ul)
		assert.Equal(t, core, cur)
		assert.False(t, ul)
		assert.Equal(t, 1, k.calls)
	}
}

func TestInductionFreshChecker(t *testing.T) {
	c, pt, all := counter(t)
	made := 0
	g := NewInduction(c, all, func() inter.Checker {
		made++
		return &fakeChecker{res: inter.Unknown}
	})
	n := &fakeNode{pt: pt, level: 1, parent: &fakeNode{pt: pt, level: 2}}
	for i := 0; i < 3; i++ {
		cur := Core{c.T}
		ul := false
		g.Generalize(n, &cur, &ul)
	}
	assert.Equal(t, 3, made)
}

func TestInductionTransition(t *testing.T) {
	c, pt, _ := counter(t)
	g := NewInduction(c, fakeAll{}, nil)
	reps := []z.Term{pt.sigs[0]}
	init, step := pt.rules[0], pt.rules[1]

	assert.Equal(t, c.Eq(c.Int(0), reps[0]), g.transition(reps, 0, init))
	assert.Equal(t, c.F, g.transition(reps, 0, step))

	tr := g.transition(reps, 1, step)
	require.Equal(t, z.OpExists, c.Op(tr))
	assert.Equal(t, []z.Sort{z.SortInt}, c.BoundSorts(tr))
	assert.Empty(t, c.FreeVars(tr))
	p0, ok := c.LookupDecl("p_0")
	require.True(t, ok)
	assert.True(t, c.Contains(tr, c.App(p0, c.Var(0, z.SortInt))))
	assert.True(t, c.Contains(tr, reps[0]))
}

func TestInductionGoalClosed(t *testing.T) {
	c, pt, all := counter(t)
	g := NewInduction(c, all, nil, WithInductionDepth(1))
	goal := g.goal(pt, 3, 1)
	assert.Empty(t, c.FreeVars(goal))
	assert.Equal(t, z.SortBool, c.Sort(goal))
	for _, name := range []string{"p_1", "p_2", "p_3"} {
		_, ok := c.LookupDecl(name)
		assert.True(t, ok, name)
	}
}
