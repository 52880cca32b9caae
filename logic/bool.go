// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"fmt"

	"github.com/go-air/pdr/z"
)

// Const returns the uninterpreted constant name of sort s, declaring it
// if necessary.
func (c *C) Const(name string, s z.Sort) z.Term {
	d := c.Declare(name, s)
	return c.intern(node{op: z.OpConst, sort: s, x: uint32(d)})
}

// App returns the application of d to args.  If d has no arguments, App
// returns the constant d.
func (c *C) App(d z.Decl, args ...z.Term) z.Term {
	e := &c.decls[d]
	if len(args) != len(e.dom) {
		panic(fmt.Sprintf("%s expects %d arguments, got %d", e.name, len(e.dom), len(args)))
	}
	if len(args) == 0 {
		return c.intern(node{op: z.OpConst, sort: e.rng, x: uint32(d)})
	}
	return c.intern(node{op: z.OpApp, sort: e.rng, x: uint32(d), args: args})
}

// Var returns the bound variable with de Bruijn index i and sort s.
func (c *C) Var(i int, s z.Sort) z.Term {
	return c.intern(node{op: z.OpVar, sort: s, x: uint32(i)})
}

// Not returns a term equivalent to "not a".
func (c *C) Not(a z.Term) z.Term {
	switch a {
	case c.T:
		return c.F
	case c.F:
		return c.T
	}
	n := &c.nodes[a]
	if n.op == z.OpNot {
		return n.args[0]
	}
	return c.intern(node{op: z.OpNot, sort: z.SortBool, args: []z.Term{a}})
}

// complement returns "not m" if it already exists in c.
func (c *C) complement(m z.Term) z.Term {
	n := &c.nodes[m]
	if n.op == z.OpNot {
		return n.args[0]
	}
	q := node{op: z.OpNot, sort: z.SortBool, args: []z.Term{m}}
	return c.find(&q, strashCode(&q))
}

// And returns a term equivalent to "a and b".
func (c *C) And(a, b z.Term) z.Term {
	return c.Ands(a, b)
}

// Ands constructs a conjunction of a sequence of terms.  Nested
// conjunctions are flattened, true and duplicate operands are dropped and
// complementary operands yield false.  If ms is empty, then Ands returns
// c.T.
func (c *C) Ands(ms ...z.Term) z.Term {
	return c.nary(z.OpAnd, c.T, c.F, ms)
}

// Or returns a term equivalent to "a or b".
func (c *C) Or(a, b z.Term) z.Term {
	return c.Ors(a, b)
}

// Ors constructs the disjunction of the terms in ms.  If ms is empty,
// then Ors returns c.F.
func (c *C) Ors(ms ...z.Term) z.Term {
	return c.nary(z.OpOr, c.F, c.T, ms)
}

func (c *C) nary(op z.Op, unit, zero z.Term, ms []z.Term) z.Term {
	res := make([]z.Term, 0, len(ms))
	seen := make(map[z.Term]bool, len(ms))
	var add func(m z.Term) bool
	add = func(m z.Term) bool {
		switch m {
		case unit:
			return true
		case zero:
			return false
		}
		n := &c.nodes[m]
		if n.op == op {
			for _, a := range n.args {
				if !add(a) {
					return false
				}
			}
			return true
		}
		if seen[m] {
			return true
		}
		if o := c.complement(m); o != z.TermNull && seen[o] {
			return false
		}
		seen[m] = true
		res = append(res, m)
		return true
	}
	for _, m := range ms {
		if !add(m) {
			return zero
		}
	}
	switch len(res) {
	case 0:
		return unit
	case 1:
		return res[0]
	}
	return c.intern(node{op: op, sort: z.SortBool, args: res})
}

// Implies constructs a term equivalent to (a implies b).
func (c *C) Implies(a, b z.Term) z.Term {
	return c.Or(c.Not(a), b)
}

// Iff constructs a term equivalent to (a iff b).
func (c *C) Iff(a, b z.Term) z.Term {
	switch {
	case a == b:
		return c.T
	case a == c.Not(b):
		return c.F
	case a == c.T:
		return b
	case b == c.T:
		return a
	case a == c.F:
		return c.Not(b)
	case b == c.F:
		return c.Not(a)
	}
	return c.intern(node{op: z.OpIff, sort: z.SortBool, args: []z.Term{a, b}})
}

// Exists constructs "exists sorts . body".  body refers to the bound
// variables by Var(i, sorts[i]).
func (c *C) Exists(sorts []z.Sort, body z.Term) z.Term {
	return c.quant(z.OpExists, sorts, body)
}

// Forall constructs "forall sorts . body".
func (c *C) Forall(sorts []z.Sort, body z.Term) z.Term {
	return c.quant(z.OpForall, sorts, body)
}

func (c *C) quant(op z.Op, sorts []z.Sort, body z.Term) z.Term {
	if len(sorts) == 0 || body == c.T || body == c.F {
		return body
	}
	return c.intern(node{op: op, sort: z.SortBool, args: []z.Term{body}, sorts: sorts})
}

// IsTrue returns whether t is the true term.
func (c *C) IsTrue(t z.Term) bool {
	return t == c.T
}

// IsFalse returns whether t is the false term.
func (c *C) IsFalse(t z.Term) bool {
	return t == c.F
}

// IsNot returns a, true if t is "not a".
func (c *C) IsNot(t z.Term) (z.Term, bool) {
	n := &c.nodes[t]
	if n.op != z.OpNot {
		return z.TermNull, false
	}
	return n.args[0], true
}

// IsApp returns the declaration of t if t is a predicate or function
// application.
func (c *C) IsApp(t z.Term) (z.Decl, bool) {
	n := &c.nodes[t]
	if n.op != z.OpApp {
		return z.DeclNull, false
	}
	return z.Decl(n.x), true
}
