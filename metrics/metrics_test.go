// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg)

	c0 := testutil.ToFloat64(generalizeCalls.WithLabelValues("bool"))
	b0 := testutil.ToFloat64(literalsBefore.WithLabelValues("bool"))
	a0 := testutil.ToFloat64(literalsAfter.WithLabelValues("bool"))
	ObserveCall("bool", 5, 2)
	assert.Equal(t, c0+1, testutil.ToFloat64(generalizeCalls.WithLabelValues("bool")))
	assert.Equal(t, b0+5, testutil.ToFloat64(literalsBefore.WithLabelValues("bool")))
	assert.Equal(t, a0+2, testutil.ToFloat64(literalsAfter.WithLabelValues("bool")))

	o0 := testutil.ToFloat64(oracleCalls.WithLabelValues("arith"))
	ObserveOracle("arith", 0)
	ObserveOracle("arith", 3)
	assert.Equal(t, o0+3, testutil.ToFloat64(oracleCalls.WithLabelValues("arith")))

	ok0 := testutil.ToFloat64(interpolations.WithLabelValues(OutcomeOK))
	f0 := testutil.ToFloat64(interpolations.WithLabelValues(OutcomeFailed))
	ObserveInterpolation(true)
	ObserveInterpolation(false)
	ObserveInterpolation(false)
	assert.Equal(t, ok0+1, testutil.ToFloat64(interpolations.WithLabelValues(OutcomeOK)))
	assert.Equal(t, f0+2, testutil.ToFloat64(interpolations.WithLabelValues(OutcomeFailed)))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	assert.True(t, names["pdr_generalize_total"])
	assert.True(t, names["pdr_interpolations_total"])
}
