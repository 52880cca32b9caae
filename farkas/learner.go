// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package farkas

import (
	"math/big"

	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

// Stats holds the statistics of a Learner.
type Stats struct {
	Attempts     int64 // Interpolate calls
	Successes    int64 // Interpolate calls returning a lemma
	Cases        int64 // assumption cases refuted
	Checks       int64 // Feasible calls
	Branches     int64 // integer branches of Feasible
	Eliminations int64 // eliminated variables
	Overflows    int64 // calls abandoned at the row bound
}

// DefaultMaxCases bounds the number of cases an assumption is split into.
const DefaultMaxCases = 64

// Learner computes Farkas lemmas over terms of a logic.C.
type Learner struct {
	c           *logic.C
	MaxRows     int
	MaxCases    int
	MaxBranches int
	stats       Stats
}

// New creates a Learner over c.
func New(c *logic.C) *Learner {
	return &Learner{
		c:           c,
		MaxRows:     DefaultMaxRows,
		MaxCases:    DefaultMaxCases,
		MaxBranches: DefaultMaxBranches}
}

// Stats returns the statistics of l.
func (l *Learner) Stats() Stats {
	return l.stats
}

func (l *Learner) newSystem() *system {
	n := l.MaxRows
	if n <= 0 {
		n = DefaultMaxRows
	}
	return newSystem(l.c, n)
}

func (l *Learner) refute(s *system) (*row, bool) {
	r, ok := s.refute()
	l.stats.Eliminations += int64(s.elims)
	if !ok {
		l.stats.Overflows++
	}
	return r, ok
}

// Interpolate returns linear literals whose conjunction I is implied by
// the conjunction of the literals of consequence and such that
// assumption and I is unsatisfiable.
//
// Disjunctions among the conjuncts of assumption split it into cases,
// each refuted separately with consequence; I conjoins the lemma of each
// case.  Other non-linear conjuncts of assumption are ignored.
// Interpolate fails if consequence has a non-linear conjunct, if some
// case is not refuted, or if there are more than MaxCases cases.
func (l *Learner) Interpolate(assumption, consequence z.Term) ([]z.Term, bool) {
	l.stats.Attempts++
	c := l.c
	cases, ok := l.cases(assumption)
	if !ok {
		return nil, false
	}
	bs := c.Conjuncts(nil, consequence)
	var res []z.Term
	seen := make(map[z.Term]bool)
	for _, as := range cases {
		m, ok := l.interpolate(as, bs)
		if !ok {
			return nil, false
		}
		l.stats.Cases++
		if c.IsTrue(m) || seen[m] {
			continue
		}
		seen[m] = true
		res = append(res, m)
	}
	if len(res) == 0 {
		res = append(res, c.T)
	}
	l.stats.Successes++
	return res, true
}

// cases returns conjunctions of literals, the disjunction of which is
// equivalent to a.
func (l *Learner) cases(a z.Term) ([][]z.Term, bool) {
	c := l.c
	limit := l.MaxCases
	if limit <= 0 {
		limit = DefaultMaxCases
	}
	var add func(cs [][]z.Term, t z.Term) ([][]z.Term, bool)
	add = func(cs [][]z.Term, t z.Term) ([][]z.Term, bool) {
		ds := c.Disjuncts(nil, t)
		if len(ds) == 1 {
			for i := range cs {
				cs[i] = append(cs[i], t)
			}
			return cs, true
		}
		var res [][]z.Term
		for _, d := range ds {
			sub := make([][]z.Term, len(cs))
			for i := range cs {
				sub[i] = append([]z.Term(nil), cs[i]...)
			}
			for _, e := range c.Conjuncts(nil, d) {
				var ok bool
				if sub, ok = add(sub, e); !ok {
					return nil, false
				}
			}
			res = append(res, sub...)
			if len(res) > limit {
				return nil, false
			}
		}
		return res, true
	}
	cs := [][]z.Term{nil}
	for _, t := range c.Conjuncts(nil, a) {
		var ok bool
		if cs, ok = add(cs, t); !ok {
			return nil, false
		}
	}
	return cs, true
}

// interpolate refutes the conjunction of as and bs and returns the
// combination of bs in the refutation as a literal.
func (l *Learner) interpolate(as, bs []z.Term) (z.Term, bool) {
	s := l.newSystem()
	for _, t := range as {
		s.add(t, 0)
	}
	for _, t := range bs {
		if !s.add(t, 1) {
			return z.TermNull, false
		}
	}
	r, ok := l.refute(s)
	if !ok || r == nil {
		return z.TermNull, false
	}
	lin := logic.NewLinear()
	strict := false
	for i, m := range r.mult {
		if s.origin[i] != 1 || m.Sign() <= 0 {
			continue
		}
		in := s.inputs[i]
		lin.AddScaled(m, in.lin)
		strict = strict || in.strict
	}
	return l.literal(lin, strict), true
}

// literal builds lin <= 0, or lin < 0 if strict, with coprime integer
// coefficients.
func (l *Learner) literal(lin logic.Linear, strict bool) z.Term {
	c := l.c
	den := big.NewInt(1)
	num := new(big.Int)
	for _, v := range lin.Coeffs {
		d := v.Denom()
		g := new(big.Int).GCD(nil, nil, den, d)
		den.Mul(den, d)
		den.Quo(den, g)
		num.GCD(nil, nil, num, new(big.Int).Abs(v.Num()))
	}
	k := new(big.Rat).SetInt(den)
	if num.Sign() > 0 {
		k.SetFrac(den, num)
	}
	scaled := logic.NewLinear()
	scaled.AddScaled(k, lin)

	sort := z.SortInt
	for x := range scaled.Coeffs {
		if c.Sort(x) != z.SortInt {
			sort = z.SortReal
		}
	}
	bound := new(big.Rat).Neg(scaled.Const)
	scaled.Const.SetInt64(0)
	lhs := c.FromLinear(scaled, sort)
	if sort == z.SortInt && !bound.IsInt() {
		return c.Le(lhs, c.Num(floor(bound), sort))
	}
	rhs := c.Num(bound, sort)
	if strict {
		return c.Lt(lhs, rhs)
	}
	return c.Le(lhs, rhs)
}

// Feasible decides the conjunction of lits, where constants of integer
// sort range over the integers and the others over the rationals.  If it
// is satisfiable, Feasible returns inter.Sat and a model of the
// variables of lits, integral on the integer ones.  If it is
// unsatisfiable, Feasible returns inter.Unsat and the sorted indices of
// a subset of lits which is unsatisfiable.  Feasible returns
// inter.Unknown if a literal is not linear, the row bound was exceeded
// or MaxBranches integer branches did not decide lits.
func (l *Learner) Feasible(lits []z.Term) (*logic.Model, []int, inter.Result) {
	l.stats.Checks++
	budget := l.MaxBranches
	if budget <= 0 {
		budget = DefaultMaxBranches
	}
	return l.feasible(lits, nil, &budget)
}

// feasible decides lits under the branch bounds of extra.  Cores refer to
// lits only; an Unsat result holds under the bounds of extra.
func (l *Learner) feasible(lits, extra []z.Term, budget *int) (*logic.Model, []int, inter.Result) {
	c := l.c
	s := l.newSystem()
	s.cuts = true
	for i, t := range lits {
		if !s.add(t, i) {
			return nil, nil, inter.Unknown
		}
	}
	for _, t := range extra {
		s.add(t, -1)
	}
	r, ok := l.refute(s)
	if !ok {
		return nil, nil, inter.Unknown
	}
	if r != nil {
		return nil, s.core(r), inter.Unsat
	}
	vals := s.witness()
	x, v := s.fractional(vals)
	if x == z.TermNull {
		m := logic.NewModel()
		for y, w := range vals {
			m.Nums[y] = w
		}
		return m, nil, inter.Sat
	}
	if *budget <= 0 {
		return nil, nil, inter.Unknown
	}
	*budget--
	l.stats.Branches++
	n := len(extra)
	lo := append(extra[:n:n], c.Le(x, c.Num(floor(v), z.SortInt)))
	m, core, res := l.feasible(lits, lo, budget)
	if res != inter.Unsat {
		return m, nil, res
	}
	hi := append(extra[:n:n], c.Ge(x, c.Num(ceil(v), z.SortInt)))
	m, core2, res := l.feasible(lits, hi, budget)
	if res != inter.Unsat {
		return m, nil, res
	}
	return nil, union(core, core2), inter.Unsat
}

// union returns the sorted union of the sorted sets a and b.
func union(a, b []int) []int {
	res := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i] < b[j]):
			res = append(res, a[i])
			i++
		case i == len(a) || b[j] < a[i]:
			res = append(res, b[j])
			j++
		default:
			res = append(res, a[i])
			i++
			j++
		}
	}
	return res
}

var _ inter.Interpolator = (*Learner)(nil)
