// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

// Op is the operator at the root of a term.
type Op uint8

const (
	OpNone Op = iota
	OpTrue
	OpFalse
	OpNum   // numeral, payload in the arena
	OpConst // uninterpreted constant
	OpApp   // uninterpreted predicate or function application
	OpVar   // bound variable, index in the arena
	OpNot
	OpAnd
	OpOr
	OpImplies
	OpIff
	OpEq
	OpLe
	OpGe
	OpLt
	OpGt
	OpAdd
	OpMul // numeral * term
	OpNeg // unary minus
	OpMod
	OpExists
	OpForall
)

var opNames = [...]string{
	OpNone:    "?",
	OpTrue:    "true",
	OpFalse:   "false",
	OpNum:     "num",
	OpConst:   "const",
	OpApp:     "app",
	OpVar:     "var",
	OpNot:     "not",
	OpAnd:     "and",
	OpOr:      "or",
	OpImplies: "=>",
	OpIff:     "iff",
	OpEq:      "=",
	OpLe:      "<=",
	OpGe:      ">=",
	OpLt:      "<",
	OpGt:      ">",
	OpAdd:     "+",
	OpMul:     "*",
	OpNeg:     "-",
	OpMod:     "mod",
	OpExists:  "exists",
	OpForall:  "forall",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "?"
}

// IsCmp returns whether o is an arithmetic comparison.
func (o Op) IsCmp() bool {
	return o >= OpEq && o <= OpGt
}

// IsQuant returns whether o binds variables.
func (o Op) IsQuant() bool {
	return o == OpExists || o == OpForall
}
