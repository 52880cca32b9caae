// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import (
	"fmt"
	"testing"
)

func TestTermFormat(t *testing.T) {
	m := Term(33)
	if fmt.Sprintf("%s", m) != "t33" {
		t.Errorf("format: %s", m)
	}
	if TermNull != 0 {
		t.Errorf("null term not zero")
	}
}

func TestParseSort(t *testing.T) {
	for _, s := range []Sort{SortBool, SortInt, SortReal} {
		if ParseSort(s.String()) != s {
			t.Errorf("sort round trip %s", s)
		}
	}
	if ParseSort("Array") != SortNone {
		t.Errorf("unknown sort parsed")
	}
	if !SortInt.IsArith() || SortBool.IsArith() {
		t.Errorf("arith sorts")
	}
}

func TestOpClasses(t *testing.T) {
	for _, o := range []Op{OpEq, OpLe, OpGe, OpLt, OpGt} {
		if !o.IsCmp() {
			t.Errorf("%s not a comparison", o)
		}
	}
	if OpAdd.IsCmp() || OpAnd.IsCmp() {
		t.Errorf("non comparisons classified as comparisons")
	}
	if !OpExists.IsQuant() || OpNot.IsQuant() {
		t.Errorf("quantifier classes")
	}
}
