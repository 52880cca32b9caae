// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

func subset(a, b Core) bool {
	in := make(map[z.Term]bool, len(b))
	for _, m := range b {
		in[m] = true
	}
	for _, m := range a {
		if !in[m] {
			return false
		}
	}
	return true
}

func TestMultiSingleCorePanics(t *testing.T) {
	c := logic.NewC()
	g := NewMulti(NewBoolInductive(c))
	core := Core(boolConsts(c, "a", "b"))
	ul := false
	assert.Panics(t, func() {
		g.Generalize(&fakeNode{level: 1}, &core, &ul)
	})
}

func TestMultiCores(t *testing.T) {
	c := logic.NewC()
	lits := boolConsts(c, "a", "b", "c", "d")
	a, b, cc, d := lits[0], lits[1], lits[2], lits[3]
	pt := &fakePT{c: c, inductive: requires([]z.Term{a, b}, []z.Term{cc, d})}
	n := &fakeNode{pt: pt, level: 2}
	g := NewMulti(NewBoolInductive(c))

	orig := Core(lits).Clone()
	cs := g.GeneralizeMany(n, orig, false)
	assert.Equal(t, Core(lits), orig)
	require.Len(t, cs, 2)
	assert.Equal(t, Core{cc, d}, cs[0].Core)
	assert.Equal(t, Core{a, b}, cs[1].Core)

	for i, cube := range cs {
		assert.True(t, pt.inductive(cube.Core), "core %d", i)
		assert.True(t, subset(cube.Core, orig))
		if i > 0 {
			assert.Less(t, len(cube.Core), len(orig))
		}
		for j, other := range cs {
			if i != j {
				assert.False(t, subset(other.Core, cube.Core), "core %d contains core %d", i, j)
			}
		}
	}
	assert.Equal(t, int64(2), g.Stats().Cores)
}

func TestMultiSingleMinimalCore(t *testing.T) {
	c := logic.NewC()
	lits := boolConsts(c, "a", "b", "c")
	pt := &fakePT{c: c, inductive: requires(lits[1:2])}
	n := &fakeNode{pt: pt, level: 1}
	cs := NewMulti(NewBoolInductive(c)).GeneralizeMany(n, Core(lits), false)
	require.Len(t, cs, 1)
	assert.Equal(t, Core{lits[1]}, cs[0].Core)
}

func TestMultiUsesLevel(t *testing.T) {
	c := logic.NewC()
	lits := boolConsts(c, "a", "b")
	f := false
	pt := &fakePT{c: c, inductive: requires(lits[:1], lits[1:]), setLevel: &f}
	n := &fakeNode{pt: pt, level: 1}
	cs := NewMulti(NewBoolInductive(c)).GeneralizeMany(n, Core(lits), true)
	require.NotEmpty(t, cs)
	for _, cube := range cs {
		assert.True(t, cube.UsesLevel)
	}
}
