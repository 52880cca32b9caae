// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdr

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/go-air/pdr/config"
	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/logic"
)

// Deps are the collaborators of a Pipeline.
type Deps struct {
	C            *logic.C
	Transformers inter.Transformers
	Interpolator inter.Interpolator
	NewChecker   func() inter.Checker
	Log          logrus.FieldLogger // defaults to the logrus standard logger
}

// Pipeline applies configured generalizers in order.
type Pipeline struct {
	gens  []Generalizer
	multi *Multi
	log   logrus.FieldLogger
}

// New creates the pipeline configured by cfg.  The multi strategy, if
// present, is applied by Cores after the single core strategies,
// wherever it appears in cfg.Pipeline.
func New(cfg *config.Config, deps Deps) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "pipeline config")
	}
	if deps.C == nil {
		return nil, errors.New("pipeline: no term arena")
	}
	log := deps.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	opts := []Option{
		WithLogger(log),
		WithFailureLimit(cfg.FailureLimit),
		WithInductionDepth(cfg.InductionDepth)}
	p := &Pipeline{log: log}
	var b *BoolInductive
	boolGen := func() *BoolInductive {
		if b == nil {
			b = NewBoolInductive(deps.C, opts...)
		}
		return b
	}
	for _, name := range cfg.Pipeline {
		switch name {
		case config.StrategyBool:
			p.gens = append(p.gens, boolGen())
		case config.StrategyMulti:
			p.multi = NewMulti(boolGen(), opts...)
		case config.StrategyArith:
			p.gens = append(p.gens, NewArithInductive(deps.C, opts...))
		case config.StrategyFarkas:
			if deps.Transformers == nil || deps.Interpolator == nil {
				return nil, errors.Errorf("strategy %q needs transformers and an interpolator", name)
			}
			p.gens = append(p.gens, NewFarkas(deps.C, deps.Transformers, deps.Interpolator, opts...))
		case config.StrategyInduction:
			if deps.Transformers == nil || deps.NewChecker == nil {
				return nil, errors.Errorf("strategy %q needs transformers and a checker", name)
			}
			p.gens = append(p.gens, NewInduction(deps.C, deps.Transformers, deps.NewChecker, opts...))
		}
	}
	return p, nil
}

// Generalizers returns the single core generalizers of p, in order,
// followed by the multi core generalizer if configured.
func (p *Pipeline) Generalizers() []Generalizer {
	res := append([]Generalizer(nil), p.gens...)
	if p.multi != nil {
		res = append(res, p.multi)
	}
	return res
}

// Generalize applies the single core generalizers of p to core in order.
func (p *Pipeline) Generalize(n inter.Node, core *Core, usesLevel *bool) {
	for _, g := range p.gens {
		g.Generalize(n, core, usesLevel)
	}
}

// Cores generalizes core and, if p has a multi core generalizer, returns
// the cores it finds from the result.  Otherwise the result is the single
// generalized core.  core is not modified.
func (p *Pipeline) Cores(n inter.Node, core Core, usesLevel bool) CoreSet {
	cur := core.Clone()
	p.Generalize(n, &cur, &usesLevel)
	if p.multi == nil {
		return CoreSet{{Core: cur, UsesLevel: usesLevel}}
	}
	return p.multi.GeneralizeMany(n, cur, usesLevel)
}

// Stats returns the statistics of each configured generalizer by name.
func (p *Pipeline) Stats() map[string]Stats {
	res := make(map[string]Stats)
	for _, g := range p.Generalizers() {
		res[g.Name()] = g.Stats()
	}
	return res
}
