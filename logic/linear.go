// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"math/big"
	"sort"

	"github.com/go-air/pdr/z"
)

// Linear is a linear combination sum(Coeffs[x] * x) + Const.  The keys of
// Coeffs are the non-arithmetic-operator subterms (constants,
// applications, bound variables and mod terms); zero coefficients are
// never stored.
type Linear struct {
	Coeffs map[z.Term]*big.Rat
	Const  *big.Rat
}

// NewLinear returns the zero combination.
func NewLinear() Linear {
	return Linear{Coeffs: make(map[z.Term]*big.Rat), Const: new(big.Rat)}
}

// AddTerm adds k * x to l.
func (l Linear) AddTerm(k *big.Rat, x z.Term) {
	v, ok := l.Coeffs[x]
	if !ok {
		v = new(big.Rat)
		l.Coeffs[x] = v
	}
	v.Add(v, k)
	if v.Sign() == 0 {
		delete(l.Coeffs, x)
	}
}

// AddScaled adds k * o to l.
func (l Linear) AddScaled(k *big.Rat, o Linear) {
	for x, v := range o.Coeffs {
		l.AddTerm(new(big.Rat).Mul(k, v), x)
	}
	l.Const.Add(l.Const, new(big.Rat).Mul(k, o.Const))
}

// IsConst returns whether l has no variables.
func (l Linear) IsConst() bool {
	return len(l.Coeffs) == 0
}

// Vars returns the variables of l in increasing handle order.
func (l Linear) Vars() []z.Term {
	vs := make([]z.Term, 0, len(l.Coeffs))
	for x := range l.Coeffs {
		vs = append(vs, x)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// Equal returns whether l and o denote the same combination.
func (l Linear) Equal(o Linear) bool {
	if len(l.Coeffs) != len(o.Coeffs) || l.Const.Cmp(o.Const) != 0 {
		return false
	}
	for x, v := range l.Coeffs {
		w, ok := o.Coeffs[x]
		if !ok || v.Cmp(w) != 0 {
			return false
		}
	}
	return true
}

// Linearize returns the linear form of the arithmetic term t.  Linearize
// returns false if t is not of arithmetic sort.
func (c *C) Linearize(t z.Term) (Linear, bool) {
	if !c.nodes[t].sort.IsArith() {
		return Linear{}, false
	}
	l := NewLinear()
	c.linearize(l, ratOne, t)
	return l, true
}

func (c *C) linearize(l Linear, k *big.Rat, t z.Term) {
	n := &c.nodes[t]
	switch n.op {
	case z.OpNum:
		l.Const.Add(l.Const, new(big.Rat).Mul(k, c.nums[n.x]))
	case z.OpAdd:
		for _, a := range n.args {
			c.linearize(l, k, a)
		}
	case z.OpNeg:
		c.linearize(l, new(big.Rat).Neg(k), n.args[0])
	case z.OpMul:
		m, _ := c.num(n.args[0])
		c.linearize(l, new(big.Rat).Mul(k, m), n.args[1])
	default:
		l.AddTerm(k, t)
	}
}

// FromLinear builds a term for l of sort s.  Variables appear in
// increasing handle order followed by the constant.
func (c *C) FromLinear(l Linear, s z.Sort) z.Term {
	ms := make([]z.Term, 0, len(l.Coeffs)+1)
	for _, x := range l.Vars() {
		ms = append(ms, c.Mul(l.Coeffs[x], x))
	}
	ms = append(ms, c.Num(l.Const, s))
	return c.Add(ms...)
}
