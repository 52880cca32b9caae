// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pdr

import (
	"github.com/sirupsen/logrus"

	"github.com/go-air/pdr/metrics"
)

// DefaultInductionDepth is the number of levels below an obligation
// assumed by the induction hypothesis.
const DefaultInductionDepth = 2

type options struct {
	log          logrus.FieldLogger
	failureLimit int
	depth        int
}

// Option configures a generalizer.
type Option func(*options)

// WithLogger sets the logger receiving debug traces.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithFailureLimit bounds the number of consecutive failed literal drops
// of BoolInductive.  0 means no limit.
func WithFailureLimit(n int) Option {
	return func(o *options) {
		o.failureLimit = n
	}
}

// WithInductionDepth sets the induction depth of Induction.
func WithInductionDepth(d int) Option {
	return func(o *options) {
		o.depth = d
	}
}

func newOptions(opts []Option) options {
	o := options{
		log:   logrus.StandardLogger(),
		depth: DefaultInductionDepth}
	for _, f := range opts {
		f(&o)
	}
	return o
}

// observe records a finished call in st and in the prometheus
// collectors, and traces it.
func (o *options) observe(st *Stats, name string, level, before, after, oracle int) {
	st.Calls++
	st.LitsBefore += int64(before)
	st.LitsAfter += int64(after)
	st.OracleCalls += int64(oracle)
	metrics.ObserveCall(name, before, after)
	metrics.ObserveOracle(name, oracle)
	o.log.WithFields(logrus.Fields{
		"strategy": name,
		"level":    level,
		"before":   before,
		"after":    after,
	}).Debug("generalized core")
}

// rewrite records an accepted core.
func (o *options) rewrite(st *Stats, name string) {
	st.Rewrites++
	metrics.ObserveRewrite(name)
}
