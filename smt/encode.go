// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package smt

import (
	"fmt"
	"math/big"

	glogic "github.com/go-air/gini/logic"
	gz "github.com/go-air/gini/z"

	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

// atom kinds
const (
	atomBool   = iota // boolean constant
	atomArith         // linear comparison over constants
	atomOpaque        // anything else
)

// encoder maps the boolean structure of terms to a gini circuit whose
// inputs are the atoms of the terms.
type encoder struct {
	c     *logic.C
	g     *glogic.C
	memo  map[z.Term]gz.Lit
	atoms []z.Term
	lits  []gz.Lit
	kinds []int
}

func newEncoder(c *logic.C) *encoder {
	return &encoder{
		c:    c,
		g:    glogic.NewC(),
		memo: make(map[z.Term]gz.Lit)}
}

func (e *encoder) lit(t z.Term) gz.Lit {
	if m, ok := e.memo[t]; ok {
		return m
	}
	c, g := e.c, e.g
	var m gz.Lit
	switch op := c.Op(t); op {
	case z.OpTrue:
		m = g.T
	case z.OpFalse:
		m = g.F
	case z.OpNot:
		m = e.lit(c.Args(t)[0]).Not()
	case z.OpAnd, z.OpOr:
		args := c.Args(t)
		ms := make([]gz.Lit, len(args))
		for i, a := range args {
			ms[i] = e.lit(a)
		}
		if op == z.OpAnd {
			m = g.Ands(ms...)
		} else {
			m = g.Ors(ms...)
		}
	case z.OpImplies:
		args := c.Args(t)
		m = g.Implies(e.lit(args[0]), e.lit(args[1]))
	case z.OpIff:
		args := c.Args(t)
		m = g.Xor(e.lit(args[0]), e.lit(args[1])).Not()
	case z.OpEq:
		if a, b, _ := c.IsEq(t); e.arith(t) {
			// split so that disequalities become disjunctions of
			// strict bounds.
			m = g.And(e.lit(c.Le(a, b)), e.lit(c.Ge(a, b)))
			break
		}
		m = e.atom(t, atomOpaque)
	default:
		kind := atomOpaque
		switch {
		case op == z.OpConst && c.Sort(t) == z.SortBool:
			kind = atomBool
		case op.IsCmp() && e.arith(t):
			kind = atomArith
		}
		m = e.atom(t, kind)
	}
	e.memo[t] = m
	return m
}

func (e *encoder) atom(t z.Term, kind int) gz.Lit {
	m := e.g.Lit()
	e.atoms = append(e.atoms, t)
	e.lits = append(e.lits, m)
	e.kinds = append(e.kinds, kind)
	return m
}

// arith returns whether the comparison t is linear over uninterpreted
// constants.
func (e *encoder) arith(t z.Term) bool {
	c := e.c
	for _, a := range c.Args(t) {
		if !c.Sort(a).IsArith() {
			return false
		}
		l, ok := c.Linearize(a)
		if !ok {
			return false
		}
		for x := range l.Coeffs {
			if c.Op(x) != z.OpConst {
				return false
			}
		}
	}
	return true
}

// purify replaces each integer term "a mod k" of t outside binders, with
// k a non-zero integer numeral and a linear over constants, by a
// remainder constant r.  It returns the result with the definitions
//
//	a = k*q + r, 0 <= r < |k|
//
// over a quotient constant q.  Remainder and quotient constants are named
// after the handle of the mod term.
func (e *encoder) purify(t z.Term) (z.Term, []z.Term) {
	c := e.c
	var defs []z.Term
	rems := make(map[z.Term]z.Term)
	res := c.Replace(t, func(s z.Term, depth int) (z.Term, bool) {
		if depth > 0 || c.Op(s) != z.OpMod {
			return z.TermNull, false
		}
		if r, ok := rems[s]; ok {
			return r, true
		}
		args := c.Args(s)
		k, ok := c.IsNum(args[1])
		if !ok || !k.IsInt() || k.Sign() == 0 || !e.linear(args[0]) {
			return z.TermNull, false
		}
		q := c.Const(fmt.Sprintf("mod!%d!q", s), z.SortInt)
		r := c.Const(fmt.Sprintf("mod!%d!r", s), z.SortInt)
		rems[s] = r
		defs = append(defs,
			c.Eq(args[0], c.Add(c.Mul(k, q), r)),
			c.Ge(r, c.Int(0)),
			c.Lt(r, c.Num(new(big.Rat).Abs(k), z.SortInt)))
		return r, true
	})
	return res, defs
}

// linear returns whether the integer term a is linear over constants.
func (e *encoder) linear(a z.Term) bool {
	c := e.c
	if c.Sort(a) != z.SortInt {
		return false
	}
	l, ok := c.Linearize(a)
	if !ok {
		return false
	}
	for x := range l.Coeffs {
		if c.Op(x) != z.OpConst {
			return false
		}
	}
	return true
}
