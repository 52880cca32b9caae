// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"
	"math/rand"
)

// RandCuber generates random cubes of bound literals over the arguments
// of a predicate, written as ?i.
type RandCuber interface {
	RandCube(dst []string) []string
}

func NewRandCuber(r *rand.Rand, maxSize, arity int, bound int) RandCuber {
	return &cubes{
		rand:    r,
		minSize: 1,
		maxSize: maxSize,
		arity:   arity,
		bound:   bound}
}

type cubes struct {
	rand    *rand.Rand
	minSize int
	maxSize int
	arity   int
	bound   int
}

var cubeOps = [...]string{">=", "<=", "="}

func (c *cubes) SetMinSize(s int) {
	c.minSize = s
}

func (c *cubes) SetMaxSize(s int) {
	c.maxSize = s
}

func (c *cubes) RandCube(dst []string) []string {
	dst = dst[:0]
	sz := c.minSize
	if c.maxSize > c.minSize {
		sz += c.rand.Intn(c.maxSize - c.minSize + 1)
	}
	for i := 0; i < sz; i++ {
		op := cubeOps[c.rand.Intn(len(cubeOps))]
		k := c.rand.Intn(c.bound + 1)
		dst = append(dst, fmt.Sprintf("(%s ?%d %d)", op, c.rand.Intn(c.arity), k))
	}
	return dst
}
