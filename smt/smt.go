// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package smt provides a satisfiability checker for quantifier free
// linear arithmetic formulas.
//
// The boolean structure of a formula is solved with gini.  Each boolean
// model is checked against the linear theory with a Farkas learner;
// infeasible models are blocked by a clause over the atoms of the
// conflict and the search resumes.  Applications, quantified subformulas
// and mod terms are abstracted as opaque atoms: formulas containing them
// can be proved unsatisfiable but never satisfiable.
package smt

import (
	"github.com/go-air/gini"
	gz "github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"

	"github.com/go-air/pdr/farkas"
	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

// DefaultMaxRounds bounds the number of theory conflicts per check.
const DefaultMaxRounds = 64

// Stats holds the statistics of a Checker.
type Stats struct {
	Checks    int64
	Rounds    int64
	Conflicts int64
	Sat       int64
	Unsat     int64
	Unknown   int64
}

// Option configures a Checker.
type Option func(*Checker)

// WithMaxRounds bounds the theory refinement rounds of each check.
func WithMaxRounds(n int) Option {
	return func(k *Checker) {
		k.maxRounds = n
	}
}

// WithLogger sets the logger of a Checker.
func WithLogger(l logrus.FieldLogger) Option {
	return func(k *Checker) {
		k.log = l
	}
}

// Checker decides formulas over terms of a logic.C.
type Checker struct {
	c         *logic.C
	fk        *farkas.Learner
	maxRounds int
	log       logrus.FieldLogger
	model     *logic.Model
	stats     Stats
}

// New creates a Checker over c.
func New(c *logic.C, opts ...Option) *Checker {
	k := &Checker{
		c:         c,
		fk:        farkas.New(c),
		maxRounds: DefaultMaxRounds,
		log:       logrus.StandardLogger()}
	for _, o := range opts {
		o(k)
	}
	if k.maxRounds < 1 {
		k.maxRounds = 1
	}
	return k
}

// Stats returns the statistics of k.
func (k *Checker) Stats() Stats {
	return k.stats
}

// Model returns the model found by the last Check returning inter.Sat,
// or nil.
func (k *Checker) Model() *logic.Model {
	return k.model
}

// Check decides f.
func (k *Checker) Check(f z.Term) inter.Result {
	k.stats.Checks++
	k.model = nil
	res, rounds := k.check(f)
	k.stats.Rounds += int64(rounds)
	switch res {
	case inter.Sat:
		k.stats.Sat++
	case inter.Unsat:
		k.stats.Unsat++
	default:
		k.stats.Unknown++
	}
	k.log.WithFields(logrus.Fields{
		"result": res,
		"rounds": rounds,
		"size":   k.c.Len(),
	}).Debug("smt check")
	return res
}

func (k *Checker) check(f z.Term) (inter.Result, int) {
	c := k.c
	e := newEncoder(c)
	pure, defs := e.purify(f)
	root := e.lit(c.Ands(append(defs, pure)...))
	g := gini.New()
	e.g.ToCnf(g)
	g.Add(root)
	g.Add(gz.LitNull)

	var lits []z.Term
	var glits []gz.Lit
	for round := 1; round <= k.maxRounds; round++ {
		switch g.Solve() {
		case -1:
			return inter.Unsat, round
		case 1:
		default:
			return inter.Unknown, round
		}
		m := logic.NewModel()
		lits, glits = lits[:0], glits[:0]
		opaque := false
		for i, a := range e.atoms {
			gl := e.lits[i]
			v := g.Value(gl)
			switch e.kinds[i] {
			case atomBool:
				m.Bools[a] = v
			case atomArith:
				if v {
					lits = append(lits, a)
					glits = append(glits, gl)
				} else {
					lits = append(lits, c.Not(a))
					glits = append(glits, gl.Not())
				}
			default:
				opaque = true
			}
		}
		tm, core, res := k.fk.Feasible(lits)
		switch res {
		case inter.Unsat:
			k.stats.Conflicts++
			for _, i := range core {
				g.Add(glits[i].Not())
			}
			g.Add(gz.LitNull)
			continue
		case inter.Unknown:
			return inter.Unknown, round
		}
		if opaque {
			return inter.Unknown, round
		}
		for x, v := range tm.Nums {
			if c.Sort(x) == z.SortInt && !v.IsInt() {
				return inter.Unknown, round
			}
			m.Nums[x] = v
		}
		if v, ok := c.EvalBool(f, m); !ok || !v {
			return inter.Unknown, round
		}
		k.model = m
		return inter.Sat, round
	}
	return inter.Unknown, k.maxRounds
}

var _ inter.Checker = (*Checker)(nil)
