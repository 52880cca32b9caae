// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Term is a handle on an interned term in a logic.C.  Two structurally
// identical terms built in the same logic.C have the same handle, so
// Terms may be compared with == and used as map keys.
type Term uint32

// TermNull is the constant 0, used in various places to indicate
// a meaningless term.
const TermNull Term = 0

func (t Term) String() string {
	return fmt.Sprintf("t%d", uint32(t))
}

// Decl is a handle on a declared uninterpreted symbol (a constant or a
// predicate) in a logic.C.
type Decl uint32

// DeclNull indicates no declaration.
const DeclNull Decl = 0

func (d Decl) String() string {
	return fmt.Sprintf("d%d", uint32(d))
}
