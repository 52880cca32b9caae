// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

// Sort is the sort (type) of a term.
type Sort uint8

const (
	SortNone Sort = iota
	SortBool
	SortInt
	SortReal
)

var sortNames = [...]string{
	SortNone: "none",
	SortBool: "Bool",
	SortInt:  "Int",
	SortReal: "Real",
}

func (s Sort) String() string {
	if int(s) < len(sortNames) {
		return sortNames[s]
	}
	return "?"
}

// IsArith returns whether s is an arithmetic sort.
func (s Sort) IsArith() bool {
	return s == SortInt || s == SortReal
}

// ParseSort returns the sort named by name, or SortNone.
func ParseSort(name string) Sort {
	for i, n := range sortNames {
		if i != 0 && n == name {
			return Sort(i)
		}
	}
	return SortNone
}
