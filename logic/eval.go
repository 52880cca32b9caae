// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"math/big"

	"github.com/go-air/pdr/z"
)

// Model assigns values to uninterpreted constants.
type Model struct {
	Nums  map[z.Term]*big.Rat
	Bools map[z.Term]bool
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{
		Nums:  make(map[z.Term]*big.Rat),
		Bools: make(map[z.Term]bool)}
}

// EvalBool evaluates the quantifier free, application free boolean term t
// under m.  ok is false if t contains anything which m does not
// determine.
func (c *C) EvalBool(t z.Term, m *Model) (v, ok bool) {
	n := c.nodes[t]
	switch n.op {
	case z.OpTrue:
		return true, true
	case z.OpFalse:
		return false, true
	case z.OpConst:
		v, ok = m.Bools[t]
		return
	case z.OpNot:
		v, ok = c.EvalBool(n.args[0], m)
		return !v, ok
	case z.OpAnd, z.OpOr:
		isAnd := n.op == z.OpAnd
		for _, a := range n.args {
			w, ok := c.EvalBool(a, m)
			if !ok {
				return false, false
			}
			if w != isAnd {
				return w, true
			}
		}
		return isAnd, true
	case z.OpIff:
		a, oka := c.EvalBool(n.args[0], m)
		b, okb := c.EvalBool(n.args[1], m)
		return a == b, oka && okb
	case z.OpEq, z.OpLe, z.OpGe, z.OpLt, z.OpGt:
		a, oka := c.EvalNum(n.args[0], m)
		b, okb := c.EvalNum(n.args[1], m)
		if !oka || !okb {
			return false, false
		}
		return holds(n.op, a.Cmp(b)), true
	}
	return false, false
}

// EvalNum evaluates the arithmetic term t under m.
func (c *C) EvalNum(t z.Term, m *Model) (*big.Rat, bool) {
	n := c.nodes[t]
	switch n.op {
	case z.OpNum:
		return new(big.Rat).Set(c.nums[n.x]), true
	case z.OpConst:
		v, ok := m.Nums[t]
		if !ok {
			return nil, false
		}
		return new(big.Rat).Set(v), true
	case z.OpAdd:
		s := new(big.Rat)
		for _, a := range n.args {
			v, ok := c.EvalNum(a, m)
			if !ok {
				return nil, false
			}
			s.Add(s, v)
		}
		return s, true
	case z.OpNeg:
		v, ok := c.EvalNum(n.args[0], m)
		if !ok {
			return nil, false
		}
		return v.Neg(v), true
	case z.OpMul:
		v, ok := c.EvalNum(n.args[1], m)
		if !ok {
			return nil, false
		}
		return v.Mul(v, c.nums[c.nodes[n.args[0]].x]), true
	case z.OpMod:
		a, oka := c.EvalNum(n.args[0], m)
		b, okb := c.EvalNum(n.args[1], m)
		if !oka || !okb || !a.IsInt() || !b.IsInt() || b.Sign() == 0 {
			return nil, false
		}
		return new(big.Rat).SetInt(euclidMod(a.Num(), b.Num())), true
	}
	return nil, false
}
