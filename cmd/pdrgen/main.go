// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command pdrgen runs configured generalization pipelines on proof
// obligations read from YAML problem files and generates synthetic
// problems.
package main

import (
	"context"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set by the linker.
var Version = "devel"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pdrgen",
		Short:         "pdrgen",
		Long:          `A CLI tool to generalize PDR proof obligations over Horn clauses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGeneralizeCmd(), newGenCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("pdrgen %s\n", Version)
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
