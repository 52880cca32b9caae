// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/go-air/pdr/pt"
)

var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

func ints(n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = "Int"
	}
	return res
}

func level(l int) *int {
	return &l
}

// Counter generates a single counter p starting at 0 and advancing by
// step, with the invariant x >= 0, the level 0 frame x <= 0 and an
// obligation at level 1 blocking x >= bad.
func Counter(step, bad int) *pt.File {
	return &pt.File{
		Predicates: []pt.PredicateSpec{{Name: "p", Args: ints(1)}},
		Rules: []pt.RuleSpec{
			{Head: "(p 0)"},
			{
				Vars:       ints(2),
				Head:       "(p ?1)",
				Tail:       []string{"(p ?0)"},
				Constraint: []string{fmt.Sprintf("(= ?1 (+ ?0 %d))", step)}}},
		Frames: []pt.FrameSpec{
			{Predicate: "p", Lemmas: []string{"(>= ?0 0)"}},
			{Predicate: "p", Level: level(0), Lemmas: []string{"(<= ?0 0)"}}},
		Obligation: pt.ObligationSpec{
			Predicate: "p",
			Level:     1,
			Core:      []string{fmt.Sprintf("(>= ?0 %d)", bad)}}}
}

// Parity generates a counter which advances by 2 from 0, so that every
// reachable value is even, with an obligation at level 1 blocking x = odd.
func Parity(odd int) *pt.File {
	f := Counter(2, 0)
	f.Obligation.Core = []string{fmt.Sprintf("(= ?0 %d)", odd|1)}
	return f
}

// Chain generates n predicates p0 ... p(n-1) where p0 holds at 0, each
// pi counts upward and p(i+1) inherits the values of pi.  The
// obligation blocks a negative value of the last predicate at level n,
// with parents along the chain.
func Chain(n int) *pt.File {
	if n < 1 {
		n = 1
	}
	f := &pt.File{}
	name := func(i int) string { return fmt.Sprintf("p%d", i) }
	for i := 0; i < n; i++ {
		p := name(i)
		f.Predicates = append(f.Predicates, pt.PredicateSpec{Name: p, Args: ints(1)})
		f.Rules = append(f.Rules, pt.RuleSpec{
			Vars:       ints(2),
			Head:       fmt.Sprintf("(%s ?1)", p),
			Tail:       []string{fmt.Sprintf("(%s ?0)", p)},
			Constraint: []string{"(= ?1 (+ ?0 1))"}})
		if i == 0 {
			f.Rules = append(f.Rules, pt.RuleSpec{Head: "(p0 0)"})
		} else {
			f.Rules = append(f.Rules, pt.RuleSpec{
				Vars: ints(1),
				Head: fmt.Sprintf("(%s ?0)", p),
				Tail: []string{fmt.Sprintf("(%s ?0)", name(i-1))}})
		}
		f.Frames = append(f.Frames, pt.FrameSpec{Predicate: p, Lemmas: []string{"(>= ?0 0)"}})
	}
	f.Obligation = pt.ObligationSpec{
		Predicate: name(n - 1),
		Level:     n,
		Core:      []string{"(< ?0 0)"}}
	for i := n - 2; i >= 0; i-- {
		f.Obligation.Parents = append(f.Obligation.Parents,
			pt.NodeSpec{Predicate: name(i), Level: n + (n - 1 - i)})
	}
	return f
}

// Rand generates a random system with one predicate of the given arity
// using the package random source.  See RandR.
func Rand(arity, maxSize, bound int) *pt.File {
	mu.Lock() // for package rng
	defer mu.Unlock()
	return RandR(rng, arity, maxSize, bound)
}

// RandR generates a system in which every argument of p starts at 0 and
// advances by a random step in [1..3].  The obligation is at level 1 and
// its core is a random cube of at most maxSize literals with constants in
// [0..bound].
func RandR(r *rand.Rand, arity, maxSize, bound int) *pt.File {
	if arity < 1 {
		arity = 1
	}
	args := make([]string, arity)
	next := make([]string, arity)
	zeros := make([]string, arity)
	var inv, init, step []string
	for i := 0; i < arity; i++ {
		args[i] = fmt.Sprintf("?%d", i)
		next[i] = fmt.Sprintf("?%d", arity+i)
		zeros[i] = "0"
		inv = append(inv, fmt.Sprintf("(>= ?%d 0)", i))
		init = append(init, fmt.Sprintf("(<= ?%d 0)", i))
		step = append(step, fmt.Sprintf("(= %s (+ %s %d))", next[i], args[i], 1+r.Intn(3)))
	}
	app := func(xs []string) string {
		return "(p " + strings.Join(xs, " ") + ")"
	}
	cuber := NewRandCuber(r, maxSize, arity, bound)
	return &pt.File{
		Predicates: []pt.PredicateSpec{{Name: "p", Args: ints(arity)}},
		Rules: []pt.RuleSpec{
			{Head: app(zeros)},
			{
				Vars:       ints(2 * arity),
				Head:       app(next),
				Tail:       []string{app(args)},
				Constraint: step}},
		Frames: []pt.FrameSpec{
			{Predicate: "p", Lemmas: inv},
			{Predicate: "p", Level: level(0), Lemmas: init}},
		Obligation: pt.ObligationSpec{
			Predicate: "p",
			Level:     1,
			Core:      cuber.RandCube(nil)}}
}
