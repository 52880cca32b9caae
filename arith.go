// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdr

import (
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/go-air/pdr/config"
	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/internal/bounds"
	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

var big2 = big.NewRat(2, 1)

// ArithInductive generalizes equalities pinned by a pair of bounds.
//
// A lower bound x >= r and an upper bound x <= r in a core, with |r| >= 2
// and x an integer term, are replaced by x mod 2 = 0 and x <= r, and the
// other bounds against r are rewritten into bounds against x.  A rewritten
// core is kept if it is inductive, and later equalities are tried against
// it.
type ArithInductive struct {
	c     *logic.C
	idx   *bounds.Index
	opts  options
	stats Stats
}

// NewArithInductive creates an arithmetic generalizer over terms of c.
func NewArithInductive(c *logic.C, opts ...Option) *ArithInductive {
	return &ArithInductive{c: c, idx: bounds.New(c), opts: newOptions(opts)}
}

// Name returns "arith".
func (g *ArithInductive) Name() string {
	return config.StrategyArith
}

// Stats returns the statistics of g.
func (g *ArithInductive) Stats() Stats {
	return g.stats
}

// Generalize rewrites the equalities of core.  Cores with at most one
// literal are left alone.
func (g *ArithInductive) Generalize(n inter.Node, core *Core, usesLevel *bool) {
	before := len(*core)
	if before <= 1 {
		g.opts.observe(&g.stats, g.Name(), n.Level(), before, before, 0)
		return
	}
	c := g.c
	pt, level := n.Transformer(), n.Level()
	g.idx.Reset()
	g.idx.Extract(*core)
	calls := 0
	for _, eq := range g.idx.Eqs() {
		trial := g.rewrite(*core, eq)
		ul := *usesLevel
		calls++
		ok := pt.CheckInductive(level, trial, &ul)
		g.opts.log.WithFields(logrus.Fields{
			"strategy":  g.Name(),
			"level":     level,
			"term":      c.String(eq.Term),
			"value":     eq.Value.RatString(),
			"inductive": ok,
		}).Debug("equality rewrite")
		if !ok {
			continue
		}
		*core = trial
		*usesLevel = *usesLevel || ul
		g.opts.rewrite(&g.stats, g.Name())
	}
	g.opts.observe(&g.stats, g.Name(), level, before, len(*core), calls)
}

func (g *ArithInductive) rewrite(core Core, eq bounds.Eq) Core {
	c := g.c
	x, r := eq.Term, eq.Value
	parity := r.Cmp(big2) >= 0 && c.IsInt(x)
	res := make(Core, len(core))
	for i, e := range core {
		switch i {
		case eq.K:
			res[i] = c.T
			if parity {
				res[i] = c.Eq(c.Mod(x, c.Int(2)), c.Int(0))
			}
		case eq.L:
			res[i] = c.T
			if parity {
				res[i] = c.Le(x, c.Num(r, z.SortInt))
			}
		default:
			res[i] = e
			if a, ok := bounds.Alias(c, r, x, e); ok {
				res[i] = a
			}
		}
	}
	return res
}

var _ Generalizer = (*ArithInductive)(nil)
