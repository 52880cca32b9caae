// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdr

import (
	"github.com/sirupsen/logrus"

	"github.com/go-air/pdr/config"
	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

// Induction generalizes a core to the blocked transition of the parent
// obligation when a Peano induction schema over the frame levels proves
// the transition blocked.
//
// For a transformer P at level k, the schema uses fresh predicates P_j
// for levels j <= k, defined by the transition axioms
//
//	forall x. P_j(x) <=> exists y. F_P[Q_{j-1}(y), x]
//
// with the frame property forall x. P_j(x) => frame_j(x).  It assumes
// P_j blocks its transitions for j in [k-depth, k) and refutes that P_k
// does not.
type Induction struct {
	c          *logic.C
	u          *logic.Unroll
	all        inter.Transformers
	newChecker func() inter.Checker
	opts       options
	stats      Stats
}

// NewInduction creates an induction generalizer.  Each query is decided
// by a fresh checker obtained from newChecker.
func NewInduction(c *logic.C, all inter.Transformers, newChecker func() inter.Checker, opts ...Option) *Induction {
	return &Induction{
		c:          c,
		u:          logic.NewUnroll(c),
		all:        all,
		newChecker: newChecker,
		opts:       newOptions(opts)}
}

// Name returns "induction".
func (g *Induction) Name() string {
	return config.StrategyInduction
}

// Stats returns the statistics of g.
func (g *Induction) Stats() Stats {
	return g.stats
}

// Generalize replaces core by "not blocked" of the parent of n if the
// induction schema holds, and sets *usesLevel.  Nothing happens at a root
// obligation or if the schema query is not unsatisfiable.
func (g *Induction) Generalize(n inter.Node, core *Core, usesLevel *bool) {
	before := len(*core)
	p := n.Parent()
	if p == nil {
		g.opts.observe(&g.stats, g.Name(), n.Level(), before, before, 0)
		return
	}
	pt, level := p.Transformer(), p.Level()
	goal := g.goal(pt, level, g.opts.depth)
	res := g.newChecker().Check(goal)
	g.opts.log.WithFields(logrus.Fields{
		"strategy":  g.Name(),
		"level":     level,
		"predicate": g.c.DeclName(pt.Head()),
		"result":    res,
	}).Debug("induction schema")
	if res == inter.Unsat {
		*core = Core{g.c.Not(g.blocked(pt, level))}
		*usesLevel = true
		g.opts.rewrite(&g.stats, g.Name())
	}
	g.opts.observe(&g.stats, g.Name(), n.Level(), before, len(*core), 1)
}

type item struct {
	pt    inter.Transformer
	level int
}

type itemKey struct {
	head  z.Decl
	level int
}

// goal returns the negated induction step of pt at level together with
// the hypotheses, axioms and frame properties of every transformer and
// level it depends on.
func (g *Induction) goal(pt inter.Transformer, level, depth int) z.Term {
	c := g.c
	conjs := []z.Term{c.Not(g.property(pt, level, g.blocked(pt, level)))}
	items := []item{{pt, level}}
	start := level - depth
	if start < 0 {
		start = 0
	}
	for lvl := start; lvl < level; lvl++ {
		if lvl > 0 {
			conjs = append(conjs, g.property(pt, lvl, g.blocked(pt, lvl)))
			items = append(items, item{pt, lvl})
		}
	}
	seen := make(map[itemKey]bool, len(items))
	for _, it := range items {
		seen[itemKey{it.pt.Head(), it.level}] = true
	}
	for q := 0; q < len(items); q++ {
		it := items[q]
		conjs = append(conjs,
			g.axiom(it.pt, it.level),
			g.property(it.pt, it.level, it.pt.Formulas(it.level, false)))
		if it.level+depth < level || it.level == 0 {
			continue
		}
		for _, r := range it.pt.Rules() {
			for _, t := range r.Tail[:r.Uninterp] {
				qt := g.all.Find(c.Decl(t))
				if qt == nil {
					continue
				}
				k := itemKey{qt.Head(), it.level - 1}
				if seen[k] {
					continue
				}
				seen[k] = true
				items = append(items, item{qt, it.level - 1})
			}
		}
	}
	return c.Ands(conjs...)
}

func (g *Induction) reps(pt inter.Transformer) []z.Term {
	n := len(g.c.DeclDomain(pt.Head()))
	reps := make([]z.Term, n)
	for i := range reps {
		reps[i] = pt.Sig(i)
	}
	return reps
}

// blocked returns "no rule of pt reaches a state at level": the
// conjunction of the negated transitions of the rules of pt.
func (g *Induction) blocked(pt inter.Transformer, level int) z.Term {
	c := g.c
	reps := g.reps(pt)
	rules := pt.Rules()
	ms := make([]z.Term, len(rules))
	for i, r := range rules {
		ms[i] = c.Not(g.transition(reps, level, r))
	}
	return c.Ands(ms...)
}

// transition returns exists y. F[Q_{level-1}, reps, y] for rule r, the
// states reps reachable by one application of r from predicates at
// level-1.  At level 0, rules with predicate tails are false.
func (g *Induction) transition(reps []z.Term, level int, r *inter.Rule) z.Term {
	c := g.c
	if level == 0 && r.Uninterp > 0 {
		return c.F
	}
	var conj, sub []z.Term
	for i, a := range c.Args(r.Head) {
		if c.Op(a) != z.OpVar {
			conj = append(conj, c.Eq(a, reps[i]))
			continue
		}
		j := c.VarIndex(a)
		for len(sub) <= j {
			sub = append(sub, z.TermNull)
		}
		if sub[j] != z.TermNull {
			conj = append(conj, c.Eq(sub[j], reps[i]))
		} else {
			sub[j] = reps[i]
		}
	}
	if level > 0 {
		for _, t := range r.Tail[:r.Uninterp] {
			conj = append(conj, g.u.App(c.Decl(t), level-1, c.Args(t)...))
		}
	}
	conj = append(conj, r.Interpreted()...)
	res := c.Ands(conj...)
	if len(sub) > 0 {
		res = c.Subst(res, sub)
	}
	sorts := c.FreeVars(res)
	for i, s := range sorts {
		if s == z.SortNone {
			sorts[i] = z.SortBool
		}
	}
	if len(sorts) > 0 {
		res = c.Exists(sorts, res)
	}
	return res
}

// axiom returns forall x. P_level(x) <=> (T_1(x) or ... or T_n(x)) for
// the transitions T_i of the rules of pt.
func (g *Induction) axiom(pt inter.Transformer, level int) z.Term {
	c := g.c
	reps := g.reps(pt)
	rules := pt.Rules()
	ts := make([]z.Term, len(rules))
	for i, r := range rules {
		ts[i] = g.transition(reps, level, r)
	}
	q := g.u.App(pt.Head(), level, reps...)
	return g.bind(reps, c.Iff(q, c.Ors(ts...)))
}

// property returns forall x. P_level(x) => phi(x).
func (g *Induction) property(pt inter.Transformer, level int, phi z.Term) z.Term {
	c := g.c
	reps := g.reps(pt)
	q := g.u.App(pt.Head(), level, reps...)
	return g.bind(reps, c.Implies(q, phi))
}

// bind universally quantifies f over reps.
func (g *Induction) bind(reps []z.Term, f z.Term) z.Term {
	if len(reps) == 0 {
		return f
	}
	c := g.c
	sorts := make([]z.Sort, len(reps))
	for i, r := range reps {
		sorts[i] = c.Sort(r)
	}
	return c.Forall(sorts, c.Abstract(f, reps))
}

var _ Generalizer = (*Induction)(nil)
