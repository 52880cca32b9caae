// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"fmt"
	"math/big"

	"github.com/go-air/pdr/z"
)

// Type C is an arena of interned terms.
type C struct {
	nodes  []node   // list of all nodes
	strash []uint32 // strash
	nums   []*big.Rat
	numIdx map[string]uint32
	decls  []decl
	dIdx   map[string]z.Decl
	F      z.Term // false
	T      z.Term // true
}

type node struct {
	op    z.Op
	sort  z.Sort
	x     uint32 // decl, var index or numeral index
	args  []z.Term
	sorts []z.Sort // bound sorts of quantifiers
	n     uint32   // next strash
}

type decl struct {
	name string
	dom  []z.Sort
	rng  z.Sort
}

// NewC creates a new term arena.
func NewC() *C {
	return NewCCap(128)
}

// NewCCap creates a new term arena with initial capacity capHint.
func NewCCap(capHint int) *C {
	if capHint < 8 {
		capHint = 8
	}
	c := &C{
		nodes:  make([]node, 1, capHint),
		strash: make([]uint32, capHint),
		numIdx: make(map[string]uint32),
		decls:  make([]decl, 1, 16),
		dIdx:   make(map[string]z.Decl)}
	c.T = c.intern(node{op: z.OpTrue, sort: z.SortBool})
	c.F = c.intern(node{op: z.OpFalse, sort: z.SortBool})
	return c
}

// Len returns the number of terms in c, including the null term.
func (c *C) Len() int {
	return len(c.nodes)
}

// Declare declares an uninterpreted symbol with range rng and domain dom.
// If name is already declared, the existing declaration is returned and
// dom, rng must agree with it; otherwise Declare panics.
func (c *C) Declare(name string, rng z.Sort, dom ...z.Sort) z.Decl {
	if d, ok := c.dIdx[name]; ok {
		e := &c.decls[d]
		if e.rng != rng || !sortsEq(e.dom, dom) {
			panic(fmt.Sprintf("redeclaration of %s with a different signature", name))
		}
		return d
	}
	d := z.Decl(len(c.decls))
	c.decls = append(c.decls, decl{name: name, dom: append([]z.Sort(nil), dom...), rng: rng})
	c.dIdx[name] = d
	return d
}

// LookupDecl returns the declaration of name, if any.
func (c *C) LookupDecl(name string) (z.Decl, bool) {
	d, ok := c.dIdx[name]
	return d, ok
}

// DeclName returns the name of d.
func (c *C) DeclName(d z.Decl) string {
	return c.decls[d].name
}

// DeclDomain returns the argument sorts of d.  The result must not be
// modified.
func (c *C) DeclDomain(d z.Decl) []z.Sort {
	return c.decls[d].dom
}

// DeclRange returns the sort of applications of d.
func (c *C) DeclRange(d z.Decl) z.Sort {
	return c.decls[d].rng
}

// Op returns the operator at the root of t.
func (c *C) Op(t z.Term) z.Op {
	return c.nodes[t].op
}

// Sort returns the sort of t.
func (c *C) Sort(t z.Term) z.Sort {
	return c.nodes[t].sort
}

// Args returns the operands of t.  The result must not be modified.
func (c *C) Args(t z.Term) []z.Term {
	return c.nodes[t].args
}

// Decl returns the declaration of a constant or application.
func (c *C) Decl(t z.Term) z.Decl {
	n := &c.nodes[t]
	if n.op != z.OpConst && n.op != z.OpApp {
		return z.DeclNull
	}
	return z.Decl(n.x)
}

// Name returns the name of a constant or application, or "".
func (c *C) Name(t z.Term) string {
	d := c.Decl(t)
	if d == z.DeclNull {
		return ""
	}
	return c.decls[d].name
}

// VarIndex returns the de Bruijn index of a bound variable.
func (c *C) VarIndex(t z.Term) int {
	return int(c.nodes[t].x)
}

// BoundSorts returns the sorts bound by a quantifier.  The result must not
// be modified.
func (c *C) BoundSorts(t z.Term) []z.Sort {
	return c.nodes[t].sorts
}

// find returns the term structurally equal to m, or z.TermNull.
func (c *C) find(m *node, h uint32) z.Term {
	si := c.strash[h%uint32(len(c.strash))]
	for si != 0 {
		n := &c.nodes[si]
		if n.op == m.op && n.sort == m.sort && n.x == m.x &&
			termsEq(n.args, m.args) && sortsEq(n.sorts, m.sorts) {
			return z.Term(si)
		}
		si = n.n
	}
	return z.TermNull
}

func (c *C) intern(m node) z.Term {
	h := strashCode(&m)
	if t := c.find(&m, h); t != z.TermNull {
		return t
	}
	if len(c.nodes) >= len(c.strash) {
		c.grow()
	}
	l := uint32(len(c.strash))
	if m.args != nil {
		m.args = append([]z.Term(nil), m.args...)
	}
	if m.sorts != nil {
		m.sorts = append([]z.Sort(nil), m.sorts...)
	}
	j := uint32(len(c.nodes))
	k := h % l
	m.n = c.strash[k]
	c.strash[k] = j
	c.nodes = append(c.nodes, m)
	return z.Term(j)
}

func (c *C) grow() {
	newCap := len(c.strash) * 2
	strash := make([]uint32, newCap)
	ucap := uint32(newCap)
	for i := 1; i < len(c.nodes); i++ {
		n := &c.nodes[i]
		j := strashCode(n) % ucap
		n.n = strash[j]
		strash[j] = uint32(i)
	}
	c.strash = strash
}

func strashCode(n *node) uint32 {
	h := uint32(n.op)*0x9e3779b1 ^ uint32(n.sort)<<8 ^ n.x*0x85ebca6b
	for _, a := range n.args {
		h = (h<<5 | h>>27) ^ uint32(a)*0xc2b2ae35
	}
	for _, s := range n.sorts {
		h = h*31 + uint32(s)
	}
	return h
}

func termsEq(a, b []z.Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortsEq(a, b []z.Sort) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
