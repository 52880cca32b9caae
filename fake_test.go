// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdr

import (
	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

// fakePT is a transformer whose inductiveness oracle is a function of the
// core alone.
type fakePT struct {
	c         *logic.C
	head      z.Decl
	sigs      []z.Term
	rules     []*inter.Rule
	inductive func(core []z.Term) bool
	setLevel  *bool // if non-nil, written to *usesLevel on each check
	prop      z.Term
	calls     int
}

func (t *fakePT) Head() z.Decl              { return t.head }
func (t *fakePT) Sig(i int) z.Term          { return t.sigs[i] }
func (t *fakePT) Rules() []*inter.Rule      { return t.rules }
func (t *fakePT) Formulas(int, bool) z.Term { return t.c.T }

func (t *fakePT) CheckInductive(level int, core []z.Term, usesLevel *bool) bool {
	t.calls++
	if t.setLevel != nil {
		*usesLevel = *t.setLevel
	}
	return t.inductive(core)
}

func (t *fakePT) PropagationFormula(all inter.Transformers, level int) z.Term {
	return t.prop
}

type fakeAll map[z.Decl]inter.Transformer

func (a fakeAll) Find(d z.Decl) inter.Transformer {
	return a[d]
}

type fakeNode struct {
	pt     inter.Transformer
	level  int
	parent *fakeNode
}

func (n *fakeNode) Transformer() inter.Transformer { return n.pt }
func (n *fakeNode) Level() int                     { return n.level }

func (n *fakeNode) Parent() inter.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

type fakeChecker struct {
	res   inter.Result
	calls int
	last  z.Term
}

func (k *fakeChecker) Check(f z.Term) inter.Result {
	k.calls++
	k.last = f
	return k.res
}

// fakeIP interpolates consequences found in lemmas.
type fakeIP struct {
	lemmas map[z.Term][]z.Term
	calls  int
}

func (ip *fakeIP) Interpolate(a, b z.Term) ([]z.Term, bool) {
	ip.calls++
	l, ok := ip.lemmas[b]
	return l, ok
}

// requires returns an oracle accepting cores containing every literal of
// one of sets.
func requires(sets ...[]z.Term) func([]z.Term) bool {
	return func(core []z.Term) bool {
		has := make(map[z.Term]bool, len(core))
		for _, m := range core {
			has[m] = true
		}
	outer:
		for _, s := range sets {
			for _, m := range s {
				if !has[m] {
					continue outer
				}
			}
			return true
		}
		return false
	}
}

func boolConsts(c *logic.C, names ...string) []z.Term {
	res := make([]z.Term, len(names))
	for i, n := range names {
		res[i] = c.Const(n, z.SortBool)
	}
	return res
}
