// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/go-air/pdr"
	"github.com/go-air/pdr/config"
	"github.com/go-air/pdr/farkas"
	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/metrics"
	"github.com/go-air/pdr/pt"
	"github.com/go-air/pdr/smt"
)

type generalizeArgs struct {
	problem        string
	config         string
	pipeline       []string
	failureLimit   int
	inductionDepth int
	logLevel       string
	metricsAddr    string
	stats          bool
}

func newGeneralizeCmd() *cobra.Command {
	var a generalizeArgs
	cmd := &cobra.Command{
		Use:   "generalize",
		Short: "Generalize the core of a proof obligation",
		Long: `The pdrgen generalize command loads a problem, runs the configured
generalizer pipeline on its proof obligation and prints the resulting cores.

        $ pdrgen generalize --problem counter.yaml --pipeline bool,arith
        `,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			lvl, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return errors.Wrap(err, "log level")
			}
			logger := log.New()
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetLevel(lvl)
			reg := prometheus.NewRegistry()
			metrics.Register(reg)
			if err := generalize(cmd.OutOrStdout(), a.problem, cfg, logger, a.stats); err != nil {
				return err
			}
			if a.metricsAddr == "" {
				return nil
			}
			return serveMetrics(cmd.Context(), a.metricsAddr, reg, logger)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&a.problem, "problem", "p", "", "The YAML problem file.")
	f.StringVarP(&a.config, "config", "c", "", "The YAML pipeline configuration.")
	f.StringSliceVar(&a.pipeline, "pipeline", nil, "Strategies to apply, in order.")
	f.IntVar(&a.failureLimit, "failure-limit", 0, "Consecutive failed literal drops before bool gives up, 0 for no limit.")
	f.IntVar(&a.inductionDepth, "induction-depth", pdr.DefaultInductionDepth, "Levels assumed by the induction hypothesis.")
	f.StringVar(&a.logLevel, "log-level", "", "Log level, overriding the configuration.")
	f.StringVar(&a.metricsAddr, "metrics-addr", "", "Serve prometheus metrics on this address until interrupted.")
	f.BoolVar(&a.stats, "stats", false, "Print generalizer statistics.")
	if err := cmd.MarkFlagRequired("problem"); err != nil {
		log.Fatalf("Failed to mark `problem` flag for `generalize` subcommand as required")
	}
	return cmd
}

// resolve loads the configuration and applies the flags set on the
// command line.
func (a *generalizeArgs) resolve(flags *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if a.config != "" {
		var err error
		cfg, err = config.Load(a.config)
		if err != nil {
			return nil, err
		}
	}
	if flags.Changed("pipeline") {
		cfg.Pipeline = a.pipeline
	}
	if flags.Changed("failure-limit") {
		cfg.FailureLimit = a.failureLimit
	}
	if flags.Changed("induction-depth") {
		cfg.InductionDepth = a.inductionDepth
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func generalize(w io.Writer, path string, cfg *config.Config, logger *log.Logger, stats bool) error {
	checkers := []smt.Option{smt.WithMaxRounds(cfg.Checker.MaxRounds), smt.WithLogger(logger)}
	p, err := pt.Load(path, func(c *logic.C) inter.Checker {
		return smt.New(c, checkers...)
	}, logger)
	if err != nil {
		return err
	}
	ip := farkas.New(p.C)
	pl, err := pdr.New(cfg, pdr.Deps{
		C:            p.C,
		Transformers: p.System,
		Interpolator: ip,
		NewChecker:   func() inter.Checker { return smt.New(p.C, checkers...) },
		Log:          logger})
	if err != nil {
		return err
	}
	logger.WithFields(log.Fields{
		"pipeline": cfg.Pipeline,
		"level":    p.Node.Level(),
		"core":     len(p.Core)}).Info("generalizing")
	for _, cube := range pl.Cores(p.Node, pdr.Core(p.Core), false) {
		fmt.Fprintf(w, "%s uses_level=%t\n", p.C.String(p.C.Ands(cube.Core...)), cube.UsesLevel)
	}
	if stats {
		for _, g := range pl.Generalizers() {
			st := g.Stats()
			fmt.Fprintf(w, "%s: calls=%d oracle=%d before=%d after=%d rewrites=%d interpolations=%d interpolations_ok=%d cores=%d\n",
				g.Name(), st.Calls, st.OracleCalls, st.LitsBefore, st.LitsAfter, st.Rewrites,
				st.Interpolations, st.InterpolationsOK, st.Cores)
		}
		ls := ip.Stats()
		fmt.Fprintf(w, "lemmas: attempts=%d successes=%d cases=%d checks=%d branches=%d eliminations=%d overflows=%d\n",
			ls.Attempts, ls.Successes, ls.Cases, ls.Checks, ls.Branches, ls.Eliminations, ls.Overflows)
		fmt.Fprintf(w, "queries: %d\n", p.System.Queries())
	}
	return nil
}

func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, logger log.FieldLogger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", addr)
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	logger.WithField("addr", ln.Addr().String()).Info("serving metrics")
	select {
	case err := <-errc:
		return errors.Wrap(err, "serving metrics")
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(sctx)
}
