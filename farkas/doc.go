// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package farkas derives Farkas lemmas for conjunctions of linear
// constraints.
//
// Constraints are normalized to the form
//
//	sum(a_i * x_i) + k <= 0     or     sum(a_i * x_i) + k < 0
//
// and refuted by Fourier-Motzkin elimination, tracking for every derived
// constraint the non-negative multipliers of the input constraints it
// combines.  A refutation is a combination whose variables cancel and
// whose constant is positive (or non-negative for a strict combination).
// By Farkas' lemma such a combination exists iff the constraints have no
// rational solution.
//
// Non-arithmetic operator subterms, such as applications and mod terms,
// are treated as variables.  Strict constraints over integer terms with
// integer coefficients are tightened by one before elimination, so
// refutations are sound, but not complete, over the integers.
//
// A Learner uses refutations in two ways: Interpolate separates an
// assumption from a consequence by the consequence's part of a
// refutation, and Feasible decides a conjunction of literals returning a
// witness or a conflicting subset.
package farkas
