// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package pt provides predicate transformers for systems of constrained
// Horn clauses: rules and frames per predicate, the relative
// inductiveness check and propagation formulas consumed by lemma
// generalization, proof obligations, and a YAML problem format.
//
// Frames are kept as lemma sets per level.  The frame of level k is the
// conjunction of the lemmas of all levels >= k, including the lemmas of
// level Infinity, which are invariants.
package pt

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

// Infinity is the level of invariant lemmas.
const Infinity = math.MaxInt32

// System is a set of predicate transformers over one term arena.
type System struct {
	c          *logic.C
	newChecker func() inter.Checker
	log        logrus.FieldLogger
	pts        map[z.Decl]*Transformer
	order      []*Transformer
	queries    int64
}

// NewSystem creates an empty system.  Inductiveness queries are decided
// by checkers from newChecker.
func NewSystem(c *logic.C, newChecker func() inter.Checker, log logrus.FieldLogger) *System {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &System{
		c:          c,
		newChecker: newChecker,
		log:        log,
		pts:        make(map[z.Decl]*Transformer)}
}

// C returns the term arena of s.
func (s *System) C() *logic.C {
	return s.c
}

// Queries returns the number of satisfiability queries issued by
// transformers of s.
func (s *System) Queries() int64 {
	return s.queries
}

// Add adds a transformer for predicate head.  Signature constants are
// named "<name>!<i>" and "<name>!<i>'" when primed.
func (s *System) Add(head z.Decl) *Transformer {
	if t, ok := s.pts[head]; ok {
		return t
	}
	c := s.c
	name := c.DeclName(head)
	dom := c.DeclDomain(head)
	t := &Transformer{
		s:      s,
		head:   head,
		sigs:   make([]z.Term, len(dom)),
		primed: make([]z.Term, len(dom)),
		lemmas: make(map[int][]z.Term)}
	for i, srt := range dom {
		t.sigs[i] = c.Const(fmt.Sprintf("%s!%d", name, i), srt)
		t.primed[i] = c.Const(fmt.Sprintf("%s!%d'", name, i), srt)
	}
	s.pts[head] = t
	s.order = append(s.order, t)
	return t
}

// AddRule adds r to the transformer of its head.  The first r.Uninterp
// tail formulas must be applications of predicates of s.
func (s *System) AddRule(r *inter.Rule) error {
	c := s.c
	t, ok := s.pts[c.Decl(r.Head)]
	if !ok {
		return errors.Errorf("rule head %s is not a predicate", c.String(r.Head))
	}
	if r.Uninterp < 0 || r.Uninterp > len(r.Tail) {
		return errors.Errorf("rule %s: bad tail split %d", c.String(r.Head), r.Uninterp)
	}
	for _, a := range r.Tail[:r.Uninterp] {
		if _, ok := s.pts[c.Decl(a)]; !ok {
			return errors.Errorf("rule %s: tail %s is not a predicate", c.String(r.Head), c.String(a))
		}
	}
	t.rules = append(t.rules, r)
	return nil
}

// Find returns the transformer of d, or nil.
func (s *System) Find(d z.Decl) inter.Transformer {
	if t, ok := s.pts[d]; ok {
		return t
	}
	return nil
}

// Lookup returns the transformer of d.
func (s *System) Lookup(d z.Decl) (*Transformer, bool) {
	t, ok := s.pts[d]
	return t, ok
}

// Transformers returns the transformers of s in order of addition.
func (s *System) Transformers() []*Transformer {
	return s.order
}

// Transformer is the state of one predicate.
type Transformer struct {
	s      *System
	head   z.Decl
	sigs   []z.Term
	primed []z.Term
	rules  []*inter.Rule
	lemmas map[int][]z.Term
}

// Head returns the predicate of t.
func (t *Transformer) Head() z.Decl {
	return t.head
}

// Sig returns the signature constant of argument i.
func (t *Transformer) Sig(i int) z.Term {
	return t.sigs[i]
}

// Rules returns the rules of t.
func (t *Transformer) Rules() []*inter.Rule {
	return t.rules
}

// AddLemma adds lemma f over the signature constants to the frame at
// level.
func (t *Transformer) AddLemma(level int, f z.Term) {
	t.lemmas[level] = append(t.lemmas[level], f)
}

// Lemmas returns the lemmas added at exactly level.
func (t *Transformer) Lemmas(level int) []z.Term {
	return t.lemmas[level]
}

// Formulas returns the frame at level over the signature, or over the
// primed signature if primed.
func (t *Transformer) Formulas(level int, primed bool) z.Term {
	c := t.s.c
	levels := make([]int, 0, len(t.lemmas))
	for l := range t.lemmas {
		if l >= level {
			levels = append(levels, l)
		}
	}
	sort.Ints(levels)
	var ms []z.Term
	for _, l := range levels {
		ms = append(ms, t.lemmas[l]...)
	}
	f := c.Ands(ms...)
	if primed {
		f = t.inst(f, t.primed)
	}
	return f
}

// inst replaces the signature constants in f by args.
func (t *Transformer) inst(f z.Term, args []z.Term) z.Term {
	c := t.s.c
	return c.Subst(c.Abstract(f, t.sigs), args)
}
