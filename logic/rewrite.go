// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/pdr/z"

// Simplify applies light rewriting to t: arithmetic subterms are put in
// linear normal form and comparisons whose sides differ by a constant are
// decided.  In particular Simplify(Eq(a, b)) is c.T whenever a and b have
// the same linear form.
func (c *C) Simplify(t z.Term) z.Term {
	m := &mapper{c: c, memo: make(map[walkKey]z.Term)}
	m.post = c.simpNode
	return m.walk(t, 0)
}

func (c *C) simpNode(t z.Term) z.Term {
	n := c.nodes[t]
	switch n.op {
	case z.OpAdd, z.OpNeg, z.OpMul:
		l, _ := c.Linearize(t)
		return c.FromLinear(l, n.sort)
	case z.OpEq, z.OpLe, z.OpGe, z.OpLt, z.OpGt:
		a, b := n.args[0], n.args[1]
		la, ok := c.Linearize(a)
		if !ok {
			return t
		}
		lb, _ := c.Linearize(b)
		la.AddScaled(ratMinusOne, lb)
		if la.IsConst() {
			return c.bool(holds(n.op, la.Const.Sign()))
		}
	}
	return t
}
