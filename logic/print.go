// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/go-air/pdr/z"
)

// String returns t as an s-expression which Parse accepts.
func (c *C) String(t z.Term) string {
	var sb strings.Builder
	c.Fprint(&sb, t)
	return sb.String()
}

// Strings returns the s-expressions of ms.
func (c *C) Strings(ms []z.Term) []string {
	res := make([]string, len(ms))
	for i, m := range ms {
		res[i] = c.String(m)
	}
	return res
}

// Fprint writes t as an s-expression to w.
func (c *C) Fprint(w io.Writer, t z.Term) {
	p := &printer{c: c, w: w}
	p.print(t)
}

type printer struct {
	c *C
	w io.Writer
}

func (p *printer) s(s string) {
	io.WriteString(p.w, s)
}

func (p *printer) print(t z.Term) {
	c := p.c
	n := &c.nodes[t]
	switch n.op {
	case z.OpNone:
		p.s("null")
	case z.OpTrue, z.OpFalse:
		p.s(n.op.String())
	case z.OpNum:
		p.num(c.nums[n.x], n.sort)
	case z.OpConst:
		p.s(c.decls[n.x].name)
	case z.OpVar:
		fmt.Fprintf(p.w, "?%d", n.x)
	case z.OpApp:
		p.list(c.decls[n.x].name, n.args)
	case z.OpExists, z.OpForall:
		p.s("(")
		p.s(n.op.String())
		p.s(" (")
		for i, s := range n.sorts {
			if i > 0 {
				p.s(" ")
			}
			p.s(s.String())
		}
		p.s(") ")
		p.print(n.args[0])
		p.s(")")
	case z.OpIff:
		p.list("=", n.args)
	default:
		p.list(n.op.String(), n.args)
	}
}

func (p *printer) list(head string, args []z.Term) {
	p.s("(")
	p.s(head)
	for _, a := range args {
		p.s(" ")
		p.print(a)
	}
	p.s(")")
}

func (p *printer) num(r *big.Rat, s z.Sort) {
	neg := r.Sign() < 0
	a := new(big.Rat).Abs(r)
	if neg {
		p.s("(- ")
	}
	switch {
	case !a.IsInt():
		fmt.Fprintf(p.w, "(/ %s %s)", a.Num(), a.Denom())
	case s == z.SortReal:
		fmt.Fprintf(p.w, "%s.0", a.Num())
	default:
		p.s(a.Num().String())
	}
	if neg {
		p.s(")")
	}
}
