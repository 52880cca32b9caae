// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdr

import (
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/pdr/farkas"
	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/pt"
	"github.com/go-air/pdr/smt"
	"github.com/go-air/pdr/z"
)

// oddYAML counts 1, 3, 5, ... and blocks x = 4 at level 1.
const oddYAML = `
predicates:
  - name: p
    args: [Int]
rules:
  - head: "(p 1)"
  - vars: [Int, Int]
    head: "(p ?1)"
    tail: ["(p ?0)"]
    constraint: ["(= ?1 (+ ?0 2))"]
frames:
  - predicate: p
    level: 0
    lemmas: ["(<= ?0 1)", "(>= ?0 1)"]
obligation:
  predicate: p
  level: 1
  core: ["(>= ?0 4)", "(<= ?0 4)", "true"]
`

// countYAML counts 0, 1, 2, ... and blocks 5 <= x <= 9 at level 1.
const countYAML = `
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
  core: ["(>= ?0 5)", "(<= ?0 9)"]
`

func decode(t *testing.T, src string) *pt.Problem {
	t.Helper()
	p, err := pt.Decode(strings.NewReader(src), func(c *logic.C) inter.Checker {
		return smt.New(c, smt.WithLogger(quietLogger()))
	}, quietLogger())
	require.NoError(t, err)
	return p
}

func TestArithParityReference(t *testing.T) {
	p := decode(t, oddYAML)
	c := p.C
	tr := p.Node.Transformer()
	x := tr.Sig(0)

	ul := false
	require.True(t, tr.CheckInductive(1, p.Core, &ul))

	g := NewArithInductive(c, WithLogger(quietLogger()))
	core := Core(p.Core).Clone()
	ul = false
	g.Generalize(p.Node, &core, &ul)
	parity := Core{c.Eq(c.Mod(x, c.Int(2)), c.Int(0)), c.Le(x, c.Int(4)), c.T}
	if diff := cmp.Diff(parity, core); diff != "" {
		t.Errorf("core mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(1), g.Stats().Rewrites)

	ul = false
	assert.True(t, tr.CheckInductive(1, core, &ul))
}

func TestFarkasReference(t *testing.T) {
	p := decode(t, countYAML)
	c := p.C
	tr := p.Node.Transformer()
	x := tr.Sig(0)

	ip := farkas.New(c)
	g := NewFarkas(c, p.System, ip, WithLogger(quietLogger()))
	core := Core(p.Core).Clone()
	ul := false
	g.Generalize(p.Node, &core, &ul)
	assert.True(t, ul)
	st := g.Stats()
	assert.Equal(t, int64(1), st.Interpolations)
	assert.Equal(t, int64(1), st.InterpolationsOK)
	assert.Equal(t, int64(2), ip.Stats().Cases)

	holds := func(f Core, v int64) bool {
		m := logic.NewModel()
		m.Nums[x] = big.NewRat(v, 1)
		res, ok := c.EvalBool(c.Ands(f...), m)
		require.True(t, ok)
		return res
	}
	assert.False(t, holds(p.Core, 20))
	assert.True(t, holds(core, 20), "core %v is not weaker", c.Strings(core))
	for _, v := range []int64{5, 9} {
		assert.True(t, holds(core, v))
	}
	for _, v := range []int64{0, 1} {
		assert.False(t, holds(core, v))
	}

	ul = false
	assert.True(t, tr.CheckInductive(1, core, &ul))
}

func TestCoreClone(t *testing.T) {
	assert.Nil(t, Core(nil).Clone())
	e := Core{}.Clone()
	assert.NotNil(t, e)
	assert.Empty(t, e)

	c := logic.NewC()
	lits := boolConsts(c, "a", "b")
	orig := Core(lits)
	cp := orig.Clone()
	assert.Equal(t, orig, cp)
	cp[0] = c.T
	assert.Equal(t, lits[0], orig[0])
	assert.Equal(t, []z.Term(lits), []z.Term(orig))
}
