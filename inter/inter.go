// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package inter

import "github.com/go-air/pdr/z"

// Result is the outcome of a decision procedure.
//
//	1  If the problem is SAT
//	0  If the problem is undetermined
//	-1 If the problem is UNSAT
//
// These codes follow the conventions of gini.
type Result int8

const (
	Unsat   Result = -1
	Unknown Result = 0
	Sat     Result = 1
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	}
	return "unknown"
}

// Checker is a synchronous satisfiability oracle.
type Checker interface {
	Check(f z.Term) Result
}

// Interpolator computes linear arithmetic Farkas lemmas.
type Interpolator interface {
	// Interpolate returns literals whose conjunction is implied by
	// consequence and inconsistent with assumption.  ok is false if no
	// such lemma was found.
	Interpolate(assumption, consequence z.Term) (lemma []z.Term, ok bool)
}

// Rule is a Horn clause
//
//	Head <- Tail[0] and ... and Tail[len(Tail)-1]
//
// whose first Uninterp tail atoms are applications of predicates with
// transformers and whose remaining tail formulas are interpreted.  Rule
// variables are the free variables (logic.C Var) of Head and Tail.
type Rule struct {
	Head     z.Term
	Tail     []z.Term
	Uninterp int
}

// Interpreted returns the interpreted tail formulas of r.
func (r *Rule) Interpreted() []z.Term {
	return r.Tail[r.Uninterp:]
}

// Transformer holds the state of one Horn clause defined predicate: its
// rules and frames, and the inductiveness oracle relative to them.
type Transformer interface {
	// Head returns the predicate defined by the transformer.
	Head() z.Decl

	// Sig returns the state constant for argument i of Head.
	Sig(i int) z.Term

	// Rules returns the rules whose head is Head, in order.
	Rules() []*Rule

	// Formulas returns the frame formula at level over the signature,
	// over primed signature constants if primed.
	Formulas(level int, primed bool) z.Term

	// CheckInductive returns whether the negation of the cube core is
	// inductive relative to the frame at level.  It may set *usesLevel
	// to true if the frame at level was needed.
	CheckInductive(level int, core []z.Term, usesLevel *bool) bool

	// PropagationFormula summarizes the states known reachable or
	// invariant at the predecessors of level.
	PropagationFormula(all Transformers, level int) z.Term
}

// Transformers is the collection of all transformers of a system.
type Transformers interface {
	Find(d z.Decl) Transformer
}

// Node is a proof obligation.
type Node interface {
	Transformer() Transformer
	Level() int
	// Parent returns the parent obligation, or nil at the root.
	Parent() Node
}
