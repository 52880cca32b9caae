// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"fmt"

	"github.com/go-air/pdr/z"
)

// Type Unroll creates level-indexed copies of predicate symbols, the
// predicates Q_k of an induction schema over frame levels.
type Unroll struct {
	C    *C // the arena holding the predicates and their copies
	dmap map[z.Decl][]z.Decl
}

// NewUnroll creates a new unroller for predicates of c.
func NewUnroll(c *C) *Unroll {
	return &Unroll{
		C:    c,
		dmap: make(map[z.Decl][]z.Decl)}
}

// At returns the copy of predicate d at level k, named "<name>_<k>", with
// the signature of d.
//
// If k < 0, then At panics.
func (u *Unroll) At(d z.Decl, k int) z.Decl {
	if k < 0 {
		panic(fmt.Sprintf("negative level %d", k))
	}
	ds := u.dmap[d]
	for len(ds) <= k {
		ds = append(ds, z.DeclNull)
	}
	if ds[k] == z.DeclNull {
		c := u.C
		name := fmt.Sprintf("%s_%d", c.DeclName(d), k)
		ds[k] = c.Declare(name, c.DeclRange(d), c.DeclDomain(d)...)
	}
	u.dmap[d] = ds
	return ds[k]
}

// App applies the level k copy of d to args.
func (u *Unroll) App(d z.Decl, k int, args ...z.Term) z.Term {
	return u.C.App(u.At(d, k), args...)
}
