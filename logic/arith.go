// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"math/big"

	"github.com/go-air/pdr/z"
)

var (
	ratZero     = new(big.Rat)
	ratOne      = big.NewRat(1, 1)
	ratMinusOne = big.NewRat(-1, 1)
)

// Num returns the numeral r of sort s.  A non-integral r always has sort
// z.SortReal.
func (c *C) Num(r *big.Rat, s z.Sort) z.Term {
	if !r.IsInt() {
		s = z.SortReal
	}
	key := r.RatString()
	i, ok := c.numIdx[key]
	if !ok {
		i = uint32(len(c.nums))
		c.nums = append(c.nums, new(big.Rat).Set(r))
		c.numIdx[key] = i
	}
	return c.intern(node{op: z.OpNum, sort: s, x: i})
}

// Int returns the integer numeral v.
func (c *C) Int(v int64) z.Term {
	return c.Num(big.NewRat(v, 1), z.SortInt)
}

// IsNum returns a copy of the value of t if t is a numeral.
func (c *C) IsNum(t z.Term) (*big.Rat, bool) {
	n := &c.nodes[t]
	if n.op != z.OpNum {
		return nil, false
	}
	return new(big.Rat).Set(c.nums[n.x]), true
}

// num returns the value of a numeral without copying.
func (c *C) num(t z.Term) (*big.Rat, bool) {
	n := &c.nodes[t]
	if n.op != z.OpNum {
		return nil, false
	}
	return c.nums[n.x], true
}

// IsInt returns whether t has integer sort.
func (c *C) IsInt(t z.Term) bool {
	return c.nodes[t].sort == z.SortInt
}

func arithSort(ss ...z.Sort) z.Sort {
	for _, s := range ss {
		if s == z.SortReal {
			return z.SortReal
		}
	}
	return z.SortInt
}

// Add constructs the sum of ms.  Nested sums are flattened and numerals
// are folded into a single trailing numeral.
func (c *C) Add(ms ...z.Term) z.Term {
	sum := new(big.Rat)
	res := make([]z.Term, 0, len(ms)+1)
	s := z.SortInt
	var add func(m z.Term)
	add = func(m z.Term) {
		n := &c.nodes[m]
		s = arithSort(s, n.sort)
		switch n.op {
		case z.OpAdd:
			for _, a := range n.args {
				add(a)
			}
		case z.OpNum:
			sum.Add(sum, c.nums[n.x])
		default:
			res = append(res, m)
		}
	}
	for _, m := range ms {
		add(m)
	}
	if sum.Sign() != 0 || len(res) == 0 {
		res = append(res, c.Num(sum, s))
	}
	if len(res) == 1 {
		return res[0]
	}
	return c.intern(node{op: z.OpAdd, sort: s, args: res})
}

// Sub constructs a - b.
func (c *C) Sub(a, b z.Term) z.Term {
	return c.Add(a, c.Neg(b))
}

// Neg constructs the arithmetic negation of a.
func (c *C) Neg(a z.Term) z.Term {
	n := &c.nodes[a]
	switch n.op {
	case z.OpNum:
		return c.Num(new(big.Rat).Neg(c.nums[n.x]), n.sort)
	case z.OpNeg:
		return n.args[0]
	case z.OpMul:
		k, _ := c.num(n.args[0])
		return c.Mul(new(big.Rat).Neg(k), n.args[1])
	}
	return c.intern(node{op: z.OpNeg, sort: n.sort, args: []z.Term{a}})
}

// Mul constructs k * t.
func (c *C) Mul(k *big.Rat, t z.Term) z.Term {
	n := &c.nodes[t]
	s := n.sort
	if !k.IsInt() {
		s = z.SortReal
	}
	switch {
	case k.Sign() == 0:
		return c.Num(ratZero, s)
	case k.Cmp(ratOne) == 0:
		return t
	case n.op == z.OpNum:
		return c.Num(new(big.Rat).Mul(k, c.nums[n.x]), s)
	case n.op == z.OpNeg:
		return c.Mul(new(big.Rat).Neg(k), n.args[0])
	case n.op == z.OpMul:
		k2, _ := c.num(n.args[0])
		return c.Mul(new(big.Rat).Mul(k, k2), n.args[1])
	}
	if k.Cmp(ratMinusOne) == 0 {
		return c.intern(node{op: z.OpNeg, sort: s, args: []z.Term{t}})
	}
	return c.intern(node{op: z.OpMul, sort: s, args: []z.Term{c.Num(k, s), t}})
}

// Mod constructs "a mod b" with the euclidean semantics of SMT-LIB: the
// result lies in [0, |b|).
func (c *C) Mod(a, b z.Term) z.Term {
	va, oka := c.num(a)
	vb, okb := c.num(b)
	if oka && okb && va.IsInt() && vb.IsInt() && vb.Sign() != 0 {
		return c.Num(new(big.Rat).SetInt(euclidMod(va.Num(), vb.Num())), z.SortInt)
	}
	return c.intern(node{op: z.OpMod, sort: z.SortInt, args: []z.Term{a, b}})
}

func euclidMod(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(a, b)
}

// Eq constructs a = b.  Boolean equalities are built with Iff.
func (c *C) Eq(a, b z.Term) z.Term {
	if a == b {
		return c.T
	}
	if c.nodes[a].sort == z.SortBool {
		return c.Iff(a, b)
	}
	if va, ok := c.num(a); ok {
		if vb, ok := c.num(b); ok {
			return c.bool(va.Cmp(vb) == 0)
		}
	}
	return c.intern(node{op: z.OpEq, sort: z.SortBool, args: []z.Term{a, b}})
}

// Le constructs a <= b.
func (c *C) Le(a, b z.Term) z.Term {
	return c.cmp(z.OpLe, a, b)
}

// Ge constructs a >= b.
func (c *C) Ge(a, b z.Term) z.Term {
	return c.cmp(z.OpGe, a, b)
}

// Lt constructs a < b.
func (c *C) Lt(a, b z.Term) z.Term {
	return c.cmp(z.OpLt, a, b)
}

// Gt constructs a > b.
func (c *C) Gt(a, b z.Term) z.Term {
	return c.cmp(z.OpGt, a, b)
}

func (c *C) cmp(op z.Op, a, b z.Term) z.Term {
	if a == b {
		return c.bool(op == z.OpLe || op == z.OpGe)
	}
	if va, ok := c.num(a); ok {
		if vb, ok := c.num(b); ok {
			return c.bool(holds(op, va.Cmp(vb)))
		}
	}
	return c.intern(node{op: op, sort: z.SortBool, args: []z.Term{a, b}})
}

// holds returns whether op holds of two values whose comparison is d.
func holds(op z.Op, d int) bool {
	switch op {
	case z.OpEq:
		return d == 0
	case z.OpLe:
		return d <= 0
	case z.OpGe:
		return d >= 0
	case z.OpLt:
		return d < 0
	case z.OpGt:
		return d > 0
	}
	return false
}

func (c *C) bool(b bool) z.Term {
	if b {
		return c.T
	}
	return c.F
}

// IsLe returns x, y, true if t is x <= y.
func (c *C) IsLe(t z.Term) (x, y z.Term, ok bool) {
	return c.isBin(t, z.OpLe)
}

// IsGe returns x, y, true if t is x >= y.
func (c *C) IsGe(t z.Term) (x, y z.Term, ok bool) {
	return c.isBin(t, z.OpGe)
}

// IsEq returns x, y, true if t is x = y.
func (c *C) IsEq(t z.Term) (x, y z.Term, ok bool) {
	return c.isBin(t, z.OpEq)
}

func (c *C) isBin(t z.Term, op z.Op) (x, y z.Term, ok bool) {
	n := &c.nodes[t]
	if n.op != op {
		return z.TermNull, z.TermNull, false
	}
	return n.args[0], n.args[1], true
}
