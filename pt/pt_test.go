// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pt

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/smt"
	"github.com/go-air/pdr/z"
)

const counterYAML = `
predicates:
  - name: p
    args: [Int]
rules:
  - head: "(p 0)"
  - vars: [Int, Int]
    head: "(p ?1)"
    tail: ["(p ?0)"]
    constraint: ["(= ?1 (+ ?0 1))"]
frames:
  - predicate: p
    lemmas: ["(>= ?0 0)"]
  - predicate: p
    level: 0
    lemmas: ["(<= ?0 0)"]
obligation:
  predicate: p
  level: 1
  core: ["(>= ?0 5)"]
  parents:
    - {predicate: p, level: 2}
`

func quiet() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newChecker(c *logic.C) inter.Checker {
	return smt.New(c, smt.WithLogger(quiet()))
}

func counter(t *testing.T) *Problem {
	p, err := Decode(strings.NewReader(counterYAML), newChecker, quiet())
	require.NoError(t, err)
	return p
}

func TestDecode(t *testing.T) {
	p := counter(t)
	c := p.C
	require.Len(t, p.System.Transformers(), 1)
	pt := p.System.Transformers()[0]
	assert.Equal(t, "p", c.DeclName(pt.Head()))
	assert.Len(t, pt.Rules(), 2)
	assert.Equal(t, 1, pt.Rules()[1].Uninterp)
	assert.Equal(t, "(>= p!0 0)", c.String(pt.Formulas(Infinity, false)))
	assert.Equal(t, "(and (<= p!0 0) (>= p!0 0))", c.String(pt.Formulas(0, false)))
	assert.Equal(t, "(>= p!0' 0)", c.String(pt.Formulas(1, true)))

	n := p.Node
	assert.Equal(t, 1, n.Level())
	require.NotNil(t, n.Parent())
	assert.Equal(t, 2, n.Parent().Level())
	assert.Nil(t, n.Parent().Parent())
	assert.Equal(t, 1, n.Depth())
	assert.Equal(t, []string{"(>= p!0 5)"}, c.Strings(p.Core))
}

func TestCheckInductive(t *testing.T) {
	p := counter(t)
	c := p.C
	pt := p.System.Transformers()[0]
	sig := pt.Sig(0)

	ul := false
	assert.True(t, pt.CheckInductive(1, []z.Term{c.Le(sig, c.Int(-1))}, &ul))
	assert.False(t, ul)

	ul = false
	assert.True(t, pt.CheckInductive(1, p.Core, &ul))
	assert.True(t, ul)

	ul = false
	assert.False(t, pt.CheckInductive(1, []z.Term{c.Ge(sig, c.Int(1))}, &ul))
	assert.False(t, ul)

	ul = false
	assert.False(t, pt.CheckInductive(1, []z.Term{c.Eq(sig, c.Int(0))}, &ul))
	assert.True(t, p.System.Queries() > 0)
}

func TestCheckInductiveLevelZero(t *testing.T) {
	p := counter(t)
	c := p.C
	pt := p.System.Transformers()[0]
	ul := false
	assert.True(t, pt.CheckInductive(0, []z.Term{c.Ge(pt.Sig(0), c.Int(1))}, &ul))
	assert.True(t, ul)
}

func TestPropagationFormula(t *testing.T) {
	p := counter(t)
	c := p.C
	pt := p.System.Transformers()[0]
	f := pt.PropagationFormula(p.System, 1)
	k := newChecker(c)
	assert.Equal(t, inter.Unsat, k.Check(c.And(f, c.Ge(pt.Sig(0), c.Int(2)))))
	assert.Equal(t, inter.Sat, k.Check(c.And(f, c.Eq(pt.Sig(0), c.Int(1)))))

	f0 := pt.PropagationFormula(p.System, 0)
	assert.Equal(t, inter.Unsat, k.Check(c.And(f0, c.Ge(pt.Sig(0), c.Int(1)))))
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		name, src, msg string
	}{
		{"sort", "predicates: [{name: p, args: [Nat]}]", "unknown sort"},
		{"twice", "predicates: [{name: p}, {name: p}]", "declared twice"},
		{"head", "predicates: [{name: p, args: [Int]}]\nrules: [{head: \"(+ 1 2)\"}]", "not a predicate application"},
		{"tail", "predicates: [{name: p, args: [Int]}]\nconstants: [{name: q, sort: Bool}]\nrules: [{vars: [Int], head: \"(p ?0)\", tail: [q]}]", "not a predicate"},
		{"frame", "predicates: [{name: p, args: [Int]}]\nframes: [{predicate: r, lemmas: [\"true\"]}]", "unknown predicate"},
		{"core", "predicates: [{name: p, args: [Int]}]\nobligation: {predicate: p, level: 1}", "empty core"},
		{"field", "predicate: []", "decoding problem"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.src), newChecker, quiet())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(counterYAML), 0o644))
	p, err := Load(path, newChecker, quiet())
	require.NoError(t, err)
	assert.Len(t, p.Core, 1)

	_, err = Load(filepath.Join(t.TempDir(), "none.yaml"), newChecker, quiet())
	assert.Error(t, err)
}
