// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package inter contains the interfaces through which the generalizers
// consume their collaborators: proof obligation nodes, predicate
// transformers and their inductiveness oracle, Farkas interpolation and a
// satisfiability checker.
package inter
