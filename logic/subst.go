// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/pdr/z"

type walkKey struct {
	t     z.Term
	depth int
}

// mapper rebuilds terms bottom up.  pre may replace a subterm outright;
// post is applied to every rebuilt compound term.
type mapper struct {
	c    *C
	pre  func(t z.Term, depth int) (z.Term, bool)
	post func(t z.Term) z.Term
	memo map[walkKey]z.Term
}

func (m *mapper) walk(t z.Term, depth int) z.Term {
	if m.pre != nil {
		if r, ok := m.pre(t, depth); ok {
			return r
		}
	}
	n := m.c.nodes[t]
	if len(n.args) == 0 {
		return t
	}
	k := walkKey{t, depth}
	if r, ok := m.memo[k]; ok {
		return r
	}
	d := depth
	if n.op.IsQuant() {
		d += len(n.sorts)
	}
	args := make([]z.Term, len(n.args))
	changed := false
	for i, a := range n.args {
		args[i] = m.walk(a, d)
		changed = changed || args[i] != a
	}
	r := t
	if changed {
		r = m.c.rebuild(t, args)
	}
	if m.post != nil {
		r = m.post(r)
	}
	m.memo[k] = r
	return r
}

// rebuild constructs a term with the operator and payload of t over args.
func (c *C) rebuild(t z.Term, args []z.Term) z.Term {
	n := c.nodes[t]
	switch n.op {
	case z.OpNot:
		return c.Not(args[0])
	case z.OpAnd:
		return c.Ands(args...)
	case z.OpOr:
		return c.Ors(args...)
	case z.OpIff:
		return c.Iff(args[0], args[1])
	case z.OpEq:
		return c.Eq(args[0], args[1])
	case z.OpLe, z.OpGe, z.OpLt, z.OpGt:
		return c.cmp(n.op, args[0], args[1])
	case z.OpAdd:
		return c.Add(args...)
	case z.OpNeg:
		return c.Neg(args[0])
	case z.OpMul:
		k, _ := c.num(args[0])
		return c.Mul(k, args[1])
	case z.OpMod:
		return c.Mod(args[0], args[1])
	case z.OpApp:
		return c.App(z.Decl(n.x), args...)
	case z.OpExists, z.OpForall:
		return c.quant(n.op, n.sorts, args[0])
	}
	return t
}

// Replace rebuilds t, replacing each subterm s for which f(s, depth)
// returns r, true by r, where depth is the number of binders above s.
// The subterms of a replaced term are not visited.
func (c *C) Replace(t z.Term, f func(s z.Term, depth int) (z.Term, bool)) z.Term {
	m := &mapper{c: c, pre: f, memo: make(map[walkKey]z.Term)}
	return m.walk(t, 0)
}

// Subst replaces each free variable Var(i) of t by sub[i], if i <
// len(sub) and sub[i] is not z.TermNull.  Other free variables keep their
// index.
func (c *C) Subst(t z.Term, sub []z.Term) z.Term {
	m := &mapper{c: c, memo: make(map[walkKey]z.Term)}
	m.pre = func(t z.Term, depth int) (z.Term, bool) {
		n := &c.nodes[t]
		if n.op != z.OpVar {
			return z.TermNull, false
		}
		i := int(n.x)
		if i < depth {
			return t, true
		}
		j := i - depth
		if j < len(sub) && sub[j] != z.TermNull {
			return c.Shift(sub[j], depth), true
		}
		return t, true
	}
	return m.walk(t, 0)
}

// Shift adds k to the index of every free variable of t.
func (c *C) Shift(t z.Term, k int) z.Term {
	if k == 0 {
		return t
	}
	m := &mapper{c: c, memo: make(map[walkKey]z.Term)}
	m.pre = func(t z.Term, depth int) (z.Term, bool) {
		n := &c.nodes[t]
		if n.op != z.OpVar {
			return z.TermNull, false
		}
		if int(n.x) < depth {
			return t, true
		}
		return c.Var(int(n.x)+k, n.sort), true
	}
	return m.walk(t, 0)
}

// Abstract replaces every occurrence of reps[i] in t by the free variable
// Var(i).  reps are expected to be closed terms, typically constants.
func (c *C) Abstract(t z.Term, reps []z.Term) z.Term {
	idx := make(map[z.Term]int, len(reps))
	for i, r := range reps {
		if _, ok := idx[r]; !ok {
			idx[r] = i
		}
	}
	m := &mapper{c: c, memo: make(map[walkKey]z.Term)}
	m.pre = func(t z.Term, depth int) (z.Term, bool) {
		if i, ok := idx[t]; ok {
			return c.Var(i+depth, c.nodes[t].sort), true
		}
		return z.TermNull, false
	}
	return m.walk(t, 0)
}

// FreeVars returns the sorts of the free variables of t, indexed by
// variable index.  Indices of absent variables hold z.SortNone.
func (c *C) FreeVars(t z.Term) []z.Sort {
	var res []z.Sort
	seen := make(map[walkKey]bool)
	var vis func(t z.Term, depth int)
	vis = func(t z.Term, depth int) {
		k := walkKey{t, depth}
		if seen[k] {
			return
		}
		seen[k] = true
		n := &c.nodes[t]
		if n.op == z.OpVar {
			i := int(n.x)
			if i < depth {
				return
			}
			i -= depth
			for len(res) <= i {
				res = append(res, z.SortNone)
			}
			res[i] = n.sort
			return
		}
		d := depth
		if n.op.IsQuant() {
			d += len(n.sorts)
		}
		for _, a := range n.args {
			vis(a, d)
		}
	}
	vis(t, 0)
	return res
}

// Contains returns whether s occurs in t.
func (c *C) Contains(t, s z.Term) bool {
	seen := make(map[z.Term]bool)
	var vis func(t z.Term) bool
	vis = func(t z.Term) bool {
		if t == s {
			return true
		}
		if seen[t] {
			return false
		}
		seen[t] = true
		for _, a := range c.nodes[t].args {
			if vis(a) {
				return true
			}
		}
		return false
	}
	return vis(t)
}
