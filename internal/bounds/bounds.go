// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bounds indexes the numeric bounds asserted by the literals of a
// cube, grouping them by bound value so that a lower and an upper bound
// on the same term with the same value can be recognized as an equality.
package bounds

import (
	"math/big"
	"sort"

	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

var two = big.NewRat(2, 1)

// Record is a normalized bound: Term >= Value if Lower, Term <= Value
// otherwise, asserted by the literal at position Index of the cube.
type Record struct {
	Term  z.Term
	Value *big.Rat
	Index int
	Lower bool
}

// Eq is an equality Term = Value implied by the lower bound at position K
// and the upper bound at position L.
type Eq struct {
	Term  z.Term
	Value *big.Rat
	K, L  int
}

// Index groups Records by bound value.  An Index lives for one
// generalization call.
type Index struct {
	c    *logic.C
	lb   map[string][]Record
	ub   map[string][]Record
	vals map[string]*big.Rat
}

// New creates an empty Index over terms of c.
func New(c *logic.C) *Index {
	x := &Index{c: c}
	x.Reset()
	return x
}

// Reset empties x.
func (x *Index) Reset() {
	x.lb = make(map[string][]Record)
	x.ub = make(map[string][]Record)
	x.vals = make(map[string]*big.Rat)
}

// Insert records the bound t >= r (lower) or t <= r at position i.
// Negative bounds are normalized by negating t, so -t <= |r| stands for
// t >= r.
func (x *Index) Insert(lower bool, t z.Term, r *big.Rat, i int) {
	if r.Sign() < 0 {
		t = x.c.Neg(t)
		lower = !lower
	}
	v := new(big.Rat).Abs(r)
	key := v.RatString()
	x.vals[key] = v
	rec := Record{Term: t, Value: v, Index: i, Lower: lower}
	if lower {
		x.lb[key] = append(x.lb[key], rec)
	} else {
		x.ub[key] = append(x.ub[key], rec)
	}
}

// Lower returns the lower bounds with magnitude v.
func (x *Index) Lower(v *big.Rat) []Record {
	return x.lb[v.RatString()]
}

// Upper returns the upper bounds with magnitude v.
func (x *Index) Upper(v *big.Rat) []Record {
	return x.ub[v.RatString()]
}

// Extract indexes the bounds of the literals of core of the forms
//
//	not (x <= r)   as  x >= r+1
//	not (x >= r)   as  x <= r-1
//	x <= r
//	x >= r
//
// where x has integer sort and r is a numeral.
func (x *Index) Extract(core []z.Term) {
	c := x.c
	for i, e := range core {
		if e1, ok := c.IsNot(e); ok {
			if a, b, ok := c.IsLe(e1); ok {
				if r, ok := c.IsNum(b); ok && c.IsInt(a) {
					x.Insert(true, a, r.Add(r, big.NewRat(1, 1)), i)
				}
			} else if a, b, ok := c.IsGe(e1); ok {
				if r, ok := c.IsNum(b); ok && c.IsInt(a) {
					x.Insert(false, a, r.Sub(r, big.NewRat(1, 1)), i)
				}
			}
			continue
		}
		if a, b, ok := c.IsLe(e); ok {
			if r, ok := c.IsNum(b); ok && c.IsInt(a) {
				x.Insert(false, a, r, i)
			}
		} else if a, b, ok := c.IsGe(e); ok {
			if r, ok := c.IsNum(b); ok && c.IsInt(a) {
				x.Insert(true, a, r, i)
			}
		}
	}
}

// Eqs returns the equalities formed by a lower and an upper bound with
// the same magnitude of at least 2 on the same term.  Terms are the same
// if they are identical or if their equality simplifies to true.  Each
// lower bound pairs with at most one upper bound.  Equalities are ordered
// by magnitude, then by the position of the lower bound.
func (x *Index) Eqs() []Eq {
	c := x.c
	keys := make([]string, 0, len(x.lb))
	for k := range x.lb {
		if _, ok := x.ub[k]; ok && x.vals[k].Cmp(two) >= 0 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return x.vals[keys[i]].Cmp(x.vals[keys[j]]) < 0
	})
	var eqs []Eq
	for _, k := range keys {
		for _, lo := range x.lb[k] {
			for _, up := range x.ub[k] {
				if lo.Term == up.Term || c.Simplify(c.Eq(lo.Term, up.Term)) == c.T {
					eqs = append(eqs, Eq{Term: lo.Term, Value: x.vals[k], K: lo.Index, L: up.Index})
					break
				}
			}
		}
	}
	return eqs
}

// Alias rewrites a bound of e against the numeral r into the same bound
// against x: y <= r becomes y <= x and y >= r becomes y >= x, under any
// number of negations.  Alias returns false if e has no such bound.
func Alias(c *logic.C, r *big.Rat, x, e z.Term) (z.Term, bool) {
	if e1, ok := c.IsNot(e); ok {
		if res, ok := Alias(c, r, x, e1); ok {
			return c.Not(res), true
		}
	}
	if y, b, ok := c.IsLe(e); ok {
		if r2, ok := c.IsNum(b); ok && r2.Cmp(r) == 0 {
			return c.Le(y, x), true
		}
	}
	if y, b, ok := c.IsGe(e); ok {
		if r2, ok := c.IsNum(b); ok && r2.Cmp(r) == 0 {
			return c.Ge(y, x), true
		}
	}
	return z.TermNull, false
}
