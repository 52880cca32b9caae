// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package farkas

import (
	"math/big"
	"sort"

	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

// DefaultMaxRows bounds the number of constraints alive during
// elimination.
const DefaultMaxRows = 4096

// DefaultMaxBranches bounds the integer branches of one Feasible call.
const DefaultMaxBranches = 64

// stage records the rows mentioning v when v was eliminated.
type stage struct {
	v    z.Term
	rows []*row
}

// system is a conjunction of constraints under elimination.
type system struct {
	c       *logic.C
	maxRows int
	cuts    bool // normalize rows over the integers
	inputs  []*row
	origin  []int // literal index of each input, -1 for branch bounds
	rows    []*row
	stages  []stage
	elims   int
}

func newSystem(c *logic.C, maxRows int) *system {
	return &system{c: c, maxRows: maxRows}
}

// add adds the constraints of literal t with origin o.  It returns false
// if t is not linear.
func (s *system) add(t z.Term, o int) bool {
	rs, ok := rows(s.c, t)
	if !ok {
		return false
	}
	for _, r := range rs {
		if s.cuts {
			normalize(s.c, r)
		} else {
			tighten(s.c, r)
		}
		i := len(s.inputs)
		r.mult = map[int]*big.Rat{i: new(big.Rat).Set(ratOne)}
		s.inputs = append(s.inputs, r)
		s.origin = append(s.origin, o)
		s.rows = append(s.rows, r)
	}
	return true
}

// refute eliminates all variables.  It returns an infeasible constant
// row, or nil if the system is feasible over the rationals.  ok is false
// if the row bound was exceeded.
func (s *system) refute() (res *row, ok bool) {
	for {
		live := s.rows[:0]
		for _, r := range s.rows {
			if r.infeasible() {
				return r, true
			}
			if !r.lin.IsConst() {
				live = append(live, r)
			}
		}
		s.rows = live
		if len(s.rows) == 0 {
			return nil, true
		}
		v := s.pick()
		var pos, neg, rest []*row
		for _, r := range s.rows {
			a, ok := r.lin.Coeffs[v]
			switch {
			case !ok:
				rest = append(rest, r)
			case a.Sign() > 0:
				pos = append(pos, r)
			default:
				neg = append(neg, r)
			}
		}
		if len(rest)+len(pos)*len(neg) > s.maxRows {
			return nil, false
		}
		st := stage{v: v, rows: make([]*row, 0, len(pos)+len(neg))}
		st.rows = append(st.rows, pos...)
		st.rows = append(st.rows, neg...)
		s.stages = append(s.stages, st)
		for _, p := range pos {
			for _, q := range neg {
				a := p.lin.Coeffs[v]
				b := new(big.Rat).Neg(q.lin.Coeffs[v])
				r := combine(b, p, a, q)
				if s.cuts {
					normalize(s.c, r)
				}
				rest = append(rest, r)
			}
		}
		s.rows = rest
		s.elims++
	}
}

// pick returns the variable whose elimination creates the fewest rows,
// the least handle among ties.
func (s *system) pick() z.Term {
	type cnt struct{ pos, neg int }
	cnts := make(map[z.Term]*cnt)
	for _, r := range s.rows {
		for x, a := range r.lin.Coeffs {
			k := cnts[x]
			if k == nil {
				k = &cnt{}
				cnts[x] = k
			}
			if a.Sign() > 0 {
				k.pos++
			} else {
				k.neg++
			}
		}
	}
	vs := make([]z.Term, 0, len(cnts))
	for x := range cnts {
		vs = append(vs, x)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	best, bestCost := z.TermNull, 0
	for i, x := range vs {
		k := cnts[x]
		cost := k.pos*k.neg - k.pos - k.neg
		if i == 0 || cost < bestCost {
			best, bestCost = x, cost
		}
	}
	return best
}

// witness assigns the eliminated variables in reverse elimination order
// after refute returned a nil row, preferring integers.
func (s *system) witness() map[z.Term]*big.Rat {
	vals := make(map[z.Term]*big.Rat)
	for i := len(s.stages) - 1; i >= 0; i-- {
		st := &s.stages[i]
		var lo, hi *big.Rat
		loStrict, hiStrict := false, false
		for _, r := range st.rows {
			a := r.lin.Coeffs[st.v]
			rest := new(big.Rat).Set(r.lin.Const)
			for x, k := range r.lin.Coeffs {
				if x == st.v {
					continue
				}
				if vals[x] == nil {
					// x only occurred in rows dropped with st.v.
					vals[x] = new(big.Rat)
				}
				rest.Add(rest, new(big.Rat).Mul(k, vals[x]))
			}
			// a*v + rest <= 0
			b := new(big.Rat).Quo(rest.Neg(rest), a)
			if a.Sign() > 0 {
				if hi == nil || b.Cmp(hi) < 0 || (b.Cmp(hi) == 0 && r.strict) {
					hi, hiStrict = b, r.strict
				}
			} else {
				if lo == nil || b.Cmp(lo) > 0 || (b.Cmp(lo) == 0 && r.strict) {
					lo, loStrict = b, r.strict
				}
			}
		}
		vals[st.v] = choose(lo, loStrict, hi, hiStrict)
	}
	return vals
}

// choose returns a value in the interval given by the bounds, an integer
// if the interval has one.
func choose(lo *big.Rat, loStrict bool, hi *big.Rat, hiStrict bool) *big.Rat {
	if lo != nil {
		n := ceil(lo)
		if loStrict && n.Cmp(lo) == 0 {
			n.Add(n, ratOne)
		}
		if hi == nil || n.Cmp(hi) < 0 || (!hiStrict && n.Cmp(hi) == 0) {
			return n
		}
	}
	if hi != nil {
		n := floor(hi)
		if hiStrict && n.Cmp(hi) == 0 {
			n.Sub(n, ratOne)
		}
		if lo == nil {
			return n
		}
		if lo.Cmp(hi) == 0 {
			return new(big.Rat).Set(lo)
		}
		m := new(big.Rat).Add(lo, hi)
		return m.Quo(m, big.NewRat(2, 1))
	}
	return new(big.Rat)
}

func floor(r *big.Rat) *big.Rat {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.Num(), r.Denom(), m)
	return new(big.Rat).SetInt(q)
}

func ceil(r *big.Rat) *big.Rat {
	f := floor(r)
	if f.Cmp(r) != 0 {
		f.Add(f, ratOne)
	}
	return f
}

// fractional returns the least integer sorted variable of vals whose
// value is not an integer.
func (s *system) fractional(vals map[z.Term]*big.Rat) (z.Term, *big.Rat) {
	best := z.TermNull
	for x, v := range vals {
		if s.c.Sort(x) != z.SortInt || v.IsInt() {
			continue
		}
		if best == z.TermNull || x < best {
			best = x
		}
	}
	if best == z.TermNull {
		return best, nil
	}
	return best, vals[best]
}

// core returns the sorted origins of the inputs combined by r, branch
// bounds excluded.
func (s *system) core(r *row) []int {
	seen := make(map[int]bool)
	var res []int
	for i, m := range r.mult {
		if m.Sign() <= 0 {
			continue
		}
		o := s.origin[i]
		if o < 0 {
			continue
		}
		if !seen[o] {
			seen[o] = true
			res = append(res, o)
		}
	}
	sort.Ints(res)
	return res
}
