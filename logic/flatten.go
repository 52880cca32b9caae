// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/pdr/z"

// Conjuncts appends the conjuncts of t to dst and returns the result.
// Nested conjunctions and negated disjunctions are flattened and true
// conjuncts are dropped.
func (c *C) Conjuncts(dst []z.Term, t z.Term) []z.Term {
	if t == c.T {
		return dst
	}
	n := c.nodes[t]
	switch n.op {
	case z.OpAnd:
		for _, a := range n.args {
			dst = c.Conjuncts(dst, a)
		}
		return dst
	case z.OpNot:
		if m := c.nodes[n.args[0]]; m.op == z.OpOr {
			for _, a := range m.args {
				dst = c.Conjuncts(dst, c.Not(a))
			}
			return dst
		}
	}
	return append(dst, t)
}

// Disjuncts appends the top level disjuncts of t to dst.  If t is not a
// disjunction, Disjuncts appends t.
func (c *C) Disjuncts(dst []z.Term, t z.Term) []z.Term {
	n := &c.nodes[t]
	if n.op == z.OpOr {
		return append(dst, n.args...)
	}
	return append(dst, t)
}
