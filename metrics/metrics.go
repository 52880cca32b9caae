// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package metrics mirrors generalizer statistics into prometheus
// collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	StrategyLabel = "strategy"
	OutcomeLabel  = "outcome"

	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

var (
	generalizeCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdr_generalize_total",
			Help: "Number of generalization calls per strategy",
		},
		[]string{StrategyLabel},
	)

	literalsBefore = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdr_core_literals_before_total",
			Help: "Sum of core sizes handed to a strategy",
		},
		[]string{StrategyLabel},
	)

	literalsAfter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdr_core_literals_after_total",
			Help: "Sum of core sizes returned by a strategy",
		},
		[]string{StrategyLabel},
	)

	oracleCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdr_oracle_calls_total",
			Help: "Number of inductiveness or satisfiability queries issued per strategy",
		},
		[]string{StrategyLabel},
	)

	rewrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdr_core_rewrites_total",
			Help: "Number of accepted core rewrites per strategy",
		},
		[]string{StrategyLabel},
	)

	interpolations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdr_interpolations_total",
			Help: "Number of Farkas interpolation attempts by outcome",
		},
		[]string{OutcomeLabel},
	)
)

// Register registers the generalizer collectors with reg.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(generalizeCalls)
	reg.MustRegister(literalsBefore)
	reg.MustRegister(literalsAfter)
	reg.MustRegister(oracleCalls)
	reg.MustRegister(rewrites)
	reg.MustRegister(interpolations)
}

// ObserveCall records one call of strategy shrinking or growing a core
// from before to after literals.
func ObserveCall(strategy string, before, after int) {
	generalizeCalls.WithLabelValues(strategy).Inc()
	literalsBefore.WithLabelValues(strategy).Add(float64(before))
	literalsAfter.WithLabelValues(strategy).Add(float64(after))
}

// ObserveOracle records n oracle queries issued by strategy.
func ObserveOracle(strategy string, n int) {
	if n > 0 {
		oracleCalls.WithLabelValues(strategy).Add(float64(n))
	}
}

// ObserveRewrite records an accepted rewrite by strategy.
func ObserveRewrite(strategy string) {
	rewrites.WithLabelValues(strategy).Inc()
}

// ObserveInterpolation records the outcome of one interpolation attempt.
func ObserveInterpolation(ok bool) {
	if ok {
		interpolations.WithLabelValues(OutcomeOK).Inc()
		return
	}
	interpolations.WithLabelValues(OutcomeFailed).Inc()
}
