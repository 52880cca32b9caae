// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdr

import (
	"github.com/go-air/pdr/config"
	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/z"
)

// Multi enumerates several minimized cores of one core using a
// BoolInductive generalizer.
//
// After a first minimization, Multi tries the original core without each
// literal that every core found so far retained.  Each inductive trial is
// minimized and recorded, so every recorded core misses a literal kept by
// all previous ones.  This covers distinct minimal cores heuristically, it
// does not enumerate all of them.
type Multi struct {
	b     *BoolInductive
	opts  options
	stats Stats
}

// NewMulti creates a multi core generalizer minimizing with b.
func NewMulti(b *BoolInductive, opts ...Option) *Multi {
	return &Multi{b: b, opts: newOptions(opts)}
}

// Name returns "multi".
func (g *Multi) Name() string {
	return config.StrategyMulti
}

// Stats returns the statistics of g.  Oracle calls of the underlying
// BoolInductive are counted there.
func (g *Multi) Stats() Stats {
	return g.stats
}

// Generalize panics: Multi only produces sets of cores.
func (g *Multi) Generalize(n inter.Node, core *Core, usesLevel *bool) {
	panic("pdr: multi generalizer used as single core generalizer: unreachable")
}

// GeneralizeMany returns minimized cores of core.  The first element is
// the minimization of core itself.
func (g *Multi) GeneralizeMany(n inter.Node, core Core, usesLevel bool) CoreSet {
	pt, level := n.Transformer(), n.Level()
	orig := core.Clone()
	first := orig.Clone()
	ul := usesLevel
	g.b.Generalize(n, &first, &ul)
	res := CoreSet{{Core: first, UsesLevel: ul}}

	remaining := make(map[z.Term]bool, len(first))
	for _, m := range first {
		remaining[m] = true
	}
	calls := 0
	for i, m := range orig {
		if !remaining[m] {
			continue
		}
		trial := make(Core, 0, len(orig)-1)
		trial = append(trial, orig[:i]...)
		trial = append(trial, orig[i+1:]...)
		tul := usesLevel
		calls++
		if !pt.CheckInductive(level, trial, &tul) {
			continue
		}
		tul = tul || usesLevel
		g.b.Generalize(n, &trial, &tul)
		if len(trial) >= len(orig) {
			continue
		}
		res = append(res, Cube{Core: trial, UsesLevel: tul})
		g.opts.rewrite(&g.stats, g.Name())
		kept := make(map[z.Term]bool, len(trial))
		for _, t := range trial {
			kept[t] = true
		}
		for t := range remaining {
			if !kept[t] {
				delete(remaining, t)
			}
		}
	}
	g.stats.Cores += int64(len(res))
	g.opts.observe(&g.stats, g.Name(), level, len(orig), len(first), calls)
	return res
}
