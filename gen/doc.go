// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators for common
// kinds of generalization problems.
//
// Generated problems are pt.File values, so they may be written out as
// YAML or built directly into a transition system with a pending proof
// obligation.
package gen
