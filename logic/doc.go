// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package logic provides an interned representation of the quantified
// linear-arithmetic formulas manipulated by the generalizers.
//
// Terms live in an arena, the type C, and are addressed by z.Term handles.
// Construction goes through structural hashing, so two structurally
// identical terms built in the same C have the same handle.  Constructors
// apply local simplifications (constant folding, double negation, neutral
// elements of and/or/+) but never reorder operands.
//
// Bound variables use de Bruijn indices: inside a quantifier binding n
// variables, Var(i) with i < n refers to the i'th bound variable and
// Var(i) with i >= n refers to the free variable i-n of the enclosing
// scope.
//
// Package logic also supports linear normal forms, a light rewriter,
// substitution and abstraction under binders, evaluation of ground terms,
// an s-expression reader and printer, and Unroll, which creates
// level-indexed copies of predicate symbols.
package logic
