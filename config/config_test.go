// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"bool", "arith", "farkas", "induction", "multi"}, cfg.Pipeline)
	assert.Equal(t, 0, cfg.FailureLimit)
	assert.Equal(t, 2, cfg.InductionDepth)
	assert.Equal(t, 64, cfg.Checker.MaxRounds)
	assert.True(t, cfg.Has(StrategyMulti))
}

func TestDecode(t *testing.T) {
	src := `
pipeline: [bool, multi]
failure_limit: 3
checker:
  max_rounds: 8
log_level: debug
`
	cfg, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"bool", "multi"}, cfg.Pipeline)
	assert.Equal(t, 3, cfg.FailureLimit)
	assert.Equal(t, 2, cfg.InductionDepth)
	assert.Equal(t, 8, cfg.Checker.MaxRounds)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Has(StrategyFarkas))
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		msg  string
	}{
		{"unknown", "pipeline: [bool, cegar]", "unknown strategy"},
		{"twice", "pipeline: [bool, bool]", "given twice"},
		{"limit", "failure_limit: -1", "negative failure limit"},
		{"depth", "induction_depth: 0", "induction depth"},
		{"rounds", "checker: {max_rounds: 0}", "max rounds"},
		{"level", "log_level: loud", "log level"},
		{"field", "pipelines: [bool]", "decoding config"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("induction_depth: 3\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.InductionDepth)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
