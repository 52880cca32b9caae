// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config holds the YAML configuration of a generalization
// pipeline.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Strategy names.
const (
	StrategyBool      = "bool"
	StrategyMulti     = "multi"
	StrategyFarkas    = "farkas"
	StrategyArith     = "arith"
	StrategyInduction = "induction"
)

// Strategies lists the known strategy names.
var Strategies = []string{
	StrategyBool,
	StrategyArith,
	StrategyFarkas,
	StrategyInduction,
	StrategyMulti,
}

// Checker configures the reference satisfiability checker.
type Checker struct {
	MaxRounds int `yaml:"max_rounds"`
}

// Config is the configuration of a pipeline.
type Config struct {
	Pipeline       []string `yaml:"pipeline"`
	FailureLimit   int      `yaml:"failure_limit"`
	InductionDepth int      `yaml:"induction_depth"`
	Checker        Checker  `yaml:"checker"`
	LogLevel       string   `yaml:"log_level"`
}

// Default returns the default configuration: every strategy, no failure
// limit, induction depth 2.
func Default() *Config {
	return &Config{
		Pipeline:       append([]string(nil), Strategies...),
		InductionDepth: 2,
		Checker:        Checker{MaxRounds: 64},
		LogLevel:       "info"}
}

// Decode reads a configuration from r.  Fields absent from r keep their
// default values.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks cfg for unknown or repeated strategies and out of range
// limits.
func (cfg *Config) Validate() error {
	seen := make(map[string]bool, len(cfg.Pipeline))
	for _, name := range cfg.Pipeline {
		if !known(name) {
			return errors.Errorf("unknown strategy %q", name)
		}
		if seen[name] {
			return errors.Errorf("strategy %q given twice", name)
		}
		seen[name] = true
	}
	if cfg.FailureLimit < 0 {
		return errors.Errorf("negative failure limit %d", cfg.FailureLimit)
	}
	if cfg.InductionDepth < 1 {
		return errors.Errorf("induction depth %d < 1", cfg.InductionDepth)
	}
	if cfg.Checker.MaxRounds < 1 {
		return errors.Errorf("checker max rounds %d < 1", cfg.Checker.MaxRounds)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}

// Has returns whether the pipeline of cfg contains strategy name.
func (cfg *Config) Has(name string) bool {
	for _, n := range cfg.Pipeline {
		if n == name {
			return true
		}
	}
	return false
}

func known(name string) bool {
	for _, s := range Strategies {
		if s == name {
			return true
		}
	}
	return false
}
