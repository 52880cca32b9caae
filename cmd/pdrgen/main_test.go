// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/go-air/pdr/config"
	"github.com/go-air/pdr/gen"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeProblem(t *testing.T, extra ...string) string {
	t.Helper()
	f := gen.Counter(1, 5)
	f.Obligation.Core = append(f.Obligation.Core, extra...)
	data, err := yaml.Marshal(f)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "counter.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pdrgen devel\n", out)
}

func TestGeneralizeBool(t *testing.T) {
	path := writeProblem(t, "(<= ?0 9)")
	out, err := run(t, "generalize", "--problem", path, "--pipeline", "bool", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "(>= p!0 5) uses_level=true\n", out)
}

func TestGeneralizeStats(t *testing.T) {
	path := writeProblem(t, "(<= ?0 9)")
	out, err := run(t, "generalize", "-p", path, "--pipeline", "bool", "--stats", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "bool: calls=1 oracle=2 before=2 after=1 rewrites=1 interpolations=0 interpolations_ok=0 cores=0\n")
	assert.Contains(t, out, "lemmas: attempts=0 successes=0 cases=0 checks=0 ")
	assert.Contains(t, out, "queries: ")

	out, err = run(t, "generalize", "-p", path, "--pipeline", "farkas", "--stats", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "farkas: calls=1 ")
	assert.Contains(t, out, " interpolations=1 ")
	assert.Contains(t, out, "lemmas: attempts=1 ")
}

func TestGeneralizeDefaultPipeline(t *testing.T) {
	path := writeProblem(t, "(<= ?0 9)")
	out, err := run(t, "generalize", "--problem", path, "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	for _, l := range lines {
		assert.Contains(t, l, "uses_level=")
	}
}

func TestGeneralizeErrors(t *testing.T) {
	_, err := run(t, "generalize")
	assert.Error(t, err)

	path := writeProblem(t)
	_, err = run(t, "generalize", "--problem", path, "--pipeline", "bool,bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")

	_, err = run(t, "generalize", "--problem", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline: [arith]\nfailure_limit: 3\n"), 0644))

	cmd := newGeneralizeCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--pipeline", "bool,multi", "--induction-depth", "4"}))
	var a generalizeArgs
	a.config = path
	a.pipeline = []string{"bool", "multi"}
	a.inductionDepth = 4
	cfg, err := a.resolve(cmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, []string{config.StrategyBool, config.StrategyMulti}, cfg.Pipeline)
	assert.Equal(t, 3, cfg.FailureLimit)
	assert.Equal(t, 4, cfg.InductionDepth)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestGen(t *testing.T) {
	for _, kind := range []string{"counter", "parity", "chain", "rand"} {
		out, err := run(t, "gen", kind, "--seed", "5")
		require.NoError(t, err, kind)
		path := filepath.Join(t.TempDir(), kind+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(out), 0644))
		_, err = run(t, "generalize", "--problem", path, "--pipeline", "bool", "--log-level", "error")
		assert.NoError(t, err, kind)
	}
	_, err := run(t, "gen", "bogus")
	assert.Error(t, err)
}
