// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package pdr provides lemma generalization for property directed
// reachability (PDR, also known as IC3) over constrained Horn clauses.
//
// A PDR search blocks a proof obligation by finding a cube, a conjunction
// of literals called a core, whose negation is inductive relative to the
// frame of the obligation.  A Generalizer weakens such a core in place,
// keeping it inductive, so that the learned lemma excludes more states.
//
// Five strategies are provided
//
//	BoolInductive   drops literals
//	Multi           enumerates several minimized cores
//	Farkas          weakens disjuncts by linear arithmetic interpolation
//	ArithInductive  replaces numeric equalities by parity constraints
//	Induction       proves a blocked transition by a Peano induction schema
//
// and a Pipeline applies a configured sequence of them.
//
// Generalizers consume their collaborators, the predicate transformers
// holding rules and frames and the satisfiability oracles, through the
// interfaces of package inter.  A generalizer may set a core's usesLevel
// flag, but never clears it.
//
// Generalizers are not safe for concurrent use.
package pdr

import (
	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/z"
)

// Core is a cube, the conjunction of its literals.  The order of literals
// is significant: it fixes the order in which literals are tried.
type Core []z.Term

// Clone returns a copy of c.  The copy of an empty, non-nil core is
// empty and non-nil.
func (c Core) Clone() Core {
	if c == nil {
		return nil
	}
	return append(make(Core, 0, len(c)), c...)
}

// Cube is a core together with its usesLevel flag.
type Cube struct {
	Core      Core
	UsesLevel bool
}

// CoreSet is a list of cubes in discovery order.
type CoreSet []Cube

// Generalizer generalizes a core in place.
type Generalizer interface {
	// Name returns the configuration name of the strategy.
	Name() string

	// Generalize weakens core, a cube blocked at node n.  usesLevel is set
	// to true if the result is only valid at the level of n.
	Generalize(n inter.Node, core *Core, usesLevel *bool)

	// Stats returns the statistics accumulated over all calls.
	Stats() Stats
}

// ManyGeneralizer produces several generalizations of one core.
type ManyGeneralizer interface {
	Generalizer

	// GeneralizeMany returns generalizations of core, a cube blocked at
	// node n.  core is not modified.
	GeneralizeMany(n inter.Node, core Core, usesLevel bool) CoreSet
}

// Stats holds the statistics of a generalizer.  All values are additive
// across calls.
type Stats struct {
	Calls            int64 // generalization calls
	OracleCalls      int64 // inductiveness and satisfiability queries
	LitsBefore       int64 // sum of core sizes on entry
	LitsAfter        int64 // sum of core sizes on exit
	Rewrites         int64 // accepted cores
	Interpolations   int64 // interpolation attempts
	InterpolationsOK int64 // successful interpolations
	Cores            int64 // cores returned by GeneralizeMany
}

// Add adds the statistics of o to s.
func (s *Stats) Add(o Stats) {
	s.Calls += o.Calls
	s.OracleCalls += o.OracleCalls
	s.LitsBefore += o.LitsBefore
	s.LitsAfter += o.LitsAfter
	s.Rewrites += o.Rewrites
	s.Interpolations += o.Interpolations
	s.InterpolationsOK += o.InterpolationsOK
	s.Cores += o.Cores
}
