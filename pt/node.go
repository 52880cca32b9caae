// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pt

import "github.com/go-air/pdr/inter"

// Node is a proof obligation: a transformer at a level, with the
// obligation it was derived from.
type Node struct {
	pt     *Transformer
	level  int
	parent *Node
}

// NewNode creates an obligation for pt at level.  parent is nil for a
// root obligation.
func NewNode(pt *Transformer, level int, parent *Node) *Node {
	return &Node{pt: pt, level: level, parent: parent}
}

func (n *Node) Transformer() inter.Transformer {
	return n.pt
}

func (n *Node) Level() int {
	return n.level
}

// Parent returns the parent of n, or nil.
func (n *Node) Parent() inter.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}
