// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pt

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

// ground returns the head and tail of rule i of t with rule variables
// replaced by constants "<name>!r<i>!<j>".
func (t *Transformer) ground(i int, r *inter.Rule) (z.Term, []z.Term) {
	c := t.s.c
	var vs []z.Sort
	merge := func(f z.Term) {
		for j, s := range c.FreeVars(f) {
			for len(vs) <= j {
				vs = append(vs, z.SortNone)
			}
			if s != z.SortNone {
				vs[j] = s
			}
		}
	}
	merge(r.Head)
	for _, a := range r.Tail {
		merge(a)
	}
	if len(vs) == 0 {
		return r.Head, r.Tail
	}
	name := c.DeclName(t.head)
	sub := make([]z.Term, len(vs))
	for j, s := range vs {
		if s != z.SortNone {
			sub[j] = c.Const(fmt.Sprintf("%s!r%d!%d", name, i, j), s)
		}
	}
	tail := make([]z.Term, len(r.Tail))
	for j, a := range r.Tail {
		tail[j] = c.Subst(a, sub)
	}
	return c.Subst(r.Head, sub), tail
}

// instantiate returns the formula f over the signature of q with the
// signature replaced by args.
func instantiate(c *logic.C, q inter.Transformer, f z.Term, args []z.Term) z.Term {
	reps := make([]z.Term, len(args))
	for i := range args {
		reps[i] = q.Sig(i)
	}
	return c.Subst(c.Abstract(f, reps), args)
}

// frameOf returns the frame of q at level over args.  Level -1 is
// empty.
func frameOf(c *logic.C, q inter.Transformer, level int, args []z.Term) z.Term {
	if level < 0 {
		return c.F
	}
	return instantiate(c, q, q.Formulas(level, false), args)
}

// CheckInductive returns whether not core is inductive relative to the
// frames below level: no rule derives a state of core from predecessor
// states in the frames of level-1 outside of core.  The check is first
// made with the invariant frames alone; if only the frames of level-1
// prove it, *usesLevel is set.
func (t *Transformer) CheckInductive(level int, core []z.Term, usesLevel *bool) bool {
	if t.inductive(core, Infinity) {
		return true
	}
	if level < Infinity && t.inductive(core, level-1) {
		*usesLevel = true
		return true
	}
	return false
}

func (t *Transformer) inductive(core []z.Term, frame int) bool {
	s := t.s
	c := s.c
	k := s.newChecker()
	for i, r := range t.rules {
		head, tail := t.ground(i, r)
		conj := make([]z.Term, 0, len(tail)+len(core)+4)
		for j, a := range c.Args(head) {
			conj = append(conj, c.Eq(a, t.sigs[j]))
		}
		for _, a := range tail[:r.Uninterp] {
			q := s.pts[c.Decl(a)]
			args := c.Args(a)
			conj = append(conj, frameOf(c, q, frame, args))
			if q == t {
				conj = append(conj, c.Not(instantiate(c, t, c.Ands(core...), args)))
			}
		}
		conj = append(conj, tail[r.Uninterp:]...)
		conj = append(conj, core...)
		s.queries++
		res := k.Check(c.Ands(conj...))
		s.log.WithFields(logrus.Fields{
			"predicate": c.DeclName(t.head),
			"rule":      i,
			"frame":     frame,
			"result":    res,
		}).Trace("inductiveness query")
		if res != inter.Unsat {
			return false
		}
	}
	return true
}

// PropagationFormula returns the disjunction over the rules of t of the
// rule bodies with predicate tails replaced by their frames at level-1
// in all, head arguments equated with the signature.  Rule variables
// remain as constants.
func (t *Transformer) PropagationFormula(all inter.Transformers, level int) z.Term {
	c := t.s.c
	ds := make([]z.Term, 0, len(t.rules))
	for i, r := range t.rules {
		head, tail := t.ground(i, r)
		var conj []z.Term
		for j, a := range c.Args(head) {
			conj = append(conj, c.Eq(a, t.sigs[j]))
		}
		for _, a := range tail[:r.Uninterp] {
			q := all.Find(c.Decl(a))
			if q == nil {
				continue
			}
			conj = append(conj, frameOf(c, q, level-1, c.Args(a)))
		}
		conj = append(conj, tail[r.Uninterp:]...)
		ds = append(ds, c.Ands(conj...))
	}
	return c.Ors(ds...)
}

var _ inter.Transformer = (*Transformer)(nil)
var _ inter.Transformers = (*System)(nil)
var _ inter.Node = (*Node)(nil)
