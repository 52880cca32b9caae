// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdr

import (
	"github.com/go-air/pdr/config"
	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

// BoolInductive generalizes a core by dropping literals.
//
// Literals are tried in order.  A literal whose removal keeps the core
// inductive is dropped and the scan resumes at the first literal not yet
// tried; otherwise the literal is kept and never tried again in the same
// call.  The result is not necessarily minimal.
type BoolInductive struct {
	c     *logic.C
	opts  options
	stats Stats
}

// NewBoolInductive creates a literal dropping generalizer over terms of c.
func NewBoolInductive(c *logic.C, opts ...Option) *BoolInductive {
	return &BoolInductive{c: c, opts: newOptions(opts)}
}

// Name returns "bool".
func (g *BoolInductive) Name() string {
	return config.StrategyBool
}

// Stats returns the statistics of g.
func (g *BoolInductive) Stats() Stats {
	return g.stats
}

type slot struct {
	lit   z.Term
	tried bool
}

// Generalize drops literals of core while it remains inductive at the
// level of n.  Cores with at most one literal are left alone.
func (g *BoolInductive) Generalize(n inter.Node, core *Core, usesLevel *bool) {
	before := len(*core)
	if before <= 1 {
		g.opts.observe(&g.stats, g.Name(), n.Level(), before, before, 0)
		return
	}
	pt, level := n.Transformer(), n.Level()
	buf := make([]slot, before)
	for i, m := range *core {
		buf[i].lit = m
	}
	trial := make([]z.Term, 0, before)
	limit := g.opts.failureLimit
	fails, calls := 0, 0
	i := 0
	for i < len(buf) && len(buf) > 1 {
		if limit > 0 && fails > limit {
			break
		}
		if buf[i].tried {
			i++
			continue
		}
		trial = trial[:0]
		for j := range buf {
			if j == i {
				trial = append(trial, g.c.T)
				continue
			}
			trial = append(trial, buf[j].lit)
		}
		ul := *usesLevel
		calls++
		if pt.CheckInductive(level, trial, &ul) {
			buf = append(buf[:i], buf[i+1:]...)
			*usesLevel = *usesLevel || ul
			fails = 0
			i = 0
			g.opts.rewrite(&g.stats, g.Name())
			continue
		}
		buf[i].tried = true
		fails++
		i++
	}
	res := make(Core, len(buf))
	for j := range buf {
		res[j] = buf[j].lit
	}
	*core = res
	g.opts.observe(&g.stats, g.Name(), level, before, len(res), calls)
}
