// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package farkas

import (
	"math/big"

	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

var (
	ratZero = new(big.Rat)
	ratOne  = big.NewRat(1, 1)
)

// row is the constraint lin <= 0, or lin < 0 if strict.  mult maps the
// indices of input rows to their positive multipliers in the
// combination forming the row.
type row struct {
	lin    logic.Linear
	strict bool
	mult   map[int]*big.Rat
}

// infeasible returns whether r is a constant constraint which does not
// hold.
func (r *row) infeasible() bool {
	if !r.lin.IsConst() {
		return false
	}
	d := r.lin.Const.Sign()
	return d > 0 || (r.strict && d == 0)
}

// combine returns a*p + b*q for positive a, b.
func combine(a *big.Rat, p *row, b *big.Rat, q *row) *row {
	lin := logic.NewLinear()
	lin.AddScaled(a, p.lin)
	lin.AddScaled(b, q.lin)
	mult := make(map[int]*big.Rat, len(p.mult)+len(q.mult))
	for i, m := range p.mult {
		mult[i] = new(big.Rat).Mul(a, m)
	}
	for i, m := range q.mult {
		v := new(big.Rat).Mul(b, m)
		if w, ok := mult[i]; ok {
			v.Add(v, w)
		}
		mult[i] = v
	}
	return &row{lin: lin, strict: p.strict || q.strict, mult: mult}
}

// integral returns whether every coefficient and the constant of l are
// integers and every variable of l has integer sort.
func integral(c *logic.C, l logic.Linear) bool {
	if !l.Const.IsInt() {
		return false
	}
	for x, v := range l.Coeffs {
		if !v.IsInt() || c.Sort(x) != z.SortInt {
			return false
		}
	}
	return true
}

// diff returns the linear form of a - b.
func diff(c *logic.C, a, b z.Term) (logic.Linear, bool) {
	la, ok := c.Linearize(a)
	if !ok {
		return la, false
	}
	lb, ok := c.Linearize(b)
	if !ok {
		return lb, false
	}
	la.AddScaled(big.NewRat(-1, 1), lb)
	return la, true
}

// rows returns the constraints equivalent to the literal t, or false if
// t is not a linear literal.
func rows(c *logic.C, t z.Term) ([]*row, bool) {
	neg := false
	for {
		u, ok := c.IsNot(t)
		if !ok {
			break
		}
		neg = !neg
		t = u
	}
	if c.IsTrue(t) || c.IsFalse(t) {
		if c.IsTrue(t) != neg {
			return nil, true
		}
		lin := logic.NewLinear()
		lin.Const.SetInt64(1)
		return []*row{{lin: lin}}, true
	}
	op := c.Op(t)
	if !op.IsCmp() {
		return nil, false
	}
	args := c.Args(t)
	a, b := args[0], args[1]
	if !c.Sort(a).IsArith() {
		return nil, false
	}
	var strict bool
	switch op {
	case z.OpEq:
		if neg {
			return nil, false
		}
		l, ok := diff(c, a, b)
		if !ok {
			return nil, false
		}
		m := logic.NewLinear()
		m.AddScaled(big.NewRat(-1, 1), l)
		return []*row{{lin: l}, {lin: m}}, true
	case z.OpGe, z.OpGt:
		a, b = b, a
		strict = op == z.OpGt
	default:
		strict = op == z.OpLt
	}
	// a <= b, or a < b if strict.
	if neg {
		a, b = b, a
		strict = !strict
	}
	l, ok := diff(c, a, b)
	if !ok {
		return nil, false
	}
	return []*row{{lin: l, strict: strict}}, true
}

// tighten turns an integral strict row lin < 0 into lin + 1 <= 0.
func tighten(c *logic.C, r *row) {
	if r.strict && integral(c, r.lin) {
		r.lin.Const.Add(r.lin.Const, ratOne)
		r.strict = false
	}
}

// normalize tightens r and divides an integral row g*s + k <= 0, g the
// gcd of its coefficients, into s + ceil(k/g) <= 0.  The result holds in
// every integer solution of r.
func normalize(c *logic.C, r *row) {
	tighten(c, r)
	if r.lin.IsConst() || !integral(c, r.lin) {
		return
	}
	g := new(big.Int)
	for _, v := range r.lin.Coeffs {
		g.GCD(nil, nil, g, new(big.Int).Abs(v.Num()))
	}
	if g.Cmp(big.NewInt(1)) == 0 {
		return
	}
	k := new(big.Rat).SetFrac(big.NewInt(1), g)
	lin := logic.NewLinear()
	lin.AddScaled(k, r.lin)
	lin.Const.Set(ceil(lin.Const))
	r.lin = lin
}
