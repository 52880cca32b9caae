// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdr

import (
	"github.com/go-air/pdr/config"
	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/metrics"
)

// Farkas weakens the disjuncts of a core by linear arithmetic
// interpolation against the propagation formula of the obligation.
type Farkas struct {
	c     *logic.C
	all   inter.Transformers
	ip    inter.Interpolator
	opts  options
	stats Stats
}

// NewFarkas creates an interpolating generalizer.  all is the collection
// of transformers passed to PropagationFormula.
func NewFarkas(c *logic.C, all inter.Transformers, ip inter.Interpolator, opts ...Option) *Farkas {
	return &Farkas{c: c, all: all, ip: ip, opts: newOptions(opts)}
}

// Name returns "farkas".
func (g *Farkas) Name() string {
	return config.StrategyFarkas
}

// Stats returns the statistics of g.
func (g *Farkas) Stats() Stats {
	return g.stats
}

// Generalize replaces each disjunct of the conjunction of core by an
// interpolant separating it from the propagation formula of n, where one
// exists.  If any disjunct was replaced, core becomes the conjuncts of the
// resulting disjunction and *usesLevel is set.
func (g *Farkas) Generalize(n inter.Node, core *Core, usesLevel *bool) {
	before := len(*core)
	if before == 0 {
		g.opts.observe(&g.stats, g.Name(), n.Level(), 0, 0, 0)
		return
	}
	c := g.c
	b := c.Ands((*core)...)
	bs := c.Disjuncts(nil, b)
	a := n.Transformer().PropagationFormula(g.all, n.Level())
	changed := false
	for i, bi := range bs {
		g.stats.Interpolations++
		lemma, ok := g.ip.Interpolate(a, bi)
		metrics.ObserveInterpolation(ok)
		if !ok {
			continue
		}
		g.stats.InterpolationsOK++
		bs[i] = c.Ands(lemma...)
		changed = true
	}
	if changed {
		res := Core(c.Conjuncts(nil, c.Ors(bs...)))
		if len(res) == 0 {
			res = Core{c.T}
		}
		*core = res
		*usesLevel = true
		g.opts.rewrite(&g.stats, g.Name())
	}
	g.opts.observe(&g.stats, g.Name(), n.Level(), before, len(*core), 0)
}

var _ Generalizer = (*Farkas)(nil)
