// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-air/pdr/gen"
	"github.com/go-air/pdr/pt"
)

type genArgs struct {
	seed  int64
	step  int
	bad   int
	n     int
	arity int
	size  int
	bound int
}

func newGenCmd() *cobra.Command {
	var a genArgs
	cmd := &cobra.Command{
		Use:   "gen (counter|parity|chain|rand)",
		Short: "Generate a synthetic problem",
		Long: `The pdrgen gen command writes a generated problem in the YAML form
read by pdrgen generalize.

        $ pdrgen gen rand --seed 3 --arity 2 > rand.yaml
        `,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"counter", "parity", "chain", "rand"},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.file(args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(f); err != nil {
				return errors.Wrap(err, "encoding problem")
			}
			return enc.Close()
		},
	}
	f := cmd.Flags()
	f.Int64Var(&a.seed, "seed", 33, "Random seed.")
	f.IntVar(&a.step, "step", 1, "Counter increment.")
	f.IntVar(&a.bad, "bad", 5, "Counter value blocked by the obligation.")
	f.IntVarP(&a.n, "n", "n", 3, "Number of predicates of a chain.")
	f.IntVar(&a.arity, "arity", 2, "Number of arguments of a random predicate.")
	f.IntVar(&a.size, "size", 4, "Maximum size of a random core.")
	f.IntVar(&a.bound, "bound", 10, "Maximum constant of a random core.")
	return cmd
}

func (a *genArgs) file(kind string) (*pt.File, error) {
	switch kind {
	case "counter":
		return gen.Counter(a.step, a.bad), nil
	case "parity":
		return gen.Parity(a.bad), nil
	case "chain":
		return gen.Chain(a.n), nil
	case "rand":
		if a.bound < 0 || a.size < 1 {
			return nil, errors.Errorf("rand needs --size >= 1 and --bound >= 0")
		}
		return gen.RandR(rand.New(rand.NewSource(a.seed)), a.arity, a.size, a.bound), nil
	}
	return nil, errors.Errorf("unknown problem kind %q", kind)
}
