// SPDX-License-Identifier: MIT

// Command packfit estimates package fill heights from production records
// and answers single what-if queries.
//
// Usage:
//
//	packfit run records.csv -o derived.csv
//	packfit trend records.csv --samples 25
//	packfit simulate --weight 40 --sg 0.8 --width 120 --length 340 --machine FR-300 --seal flat
//	packfit suggest --weight 40 --sg 0.8
//	packfit constants
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/packfit/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by sub-commands after PersistentPreRunE.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "packfit",
		Short: "Package height estimator",
		Long: `packfit derives fill area, volume, estimated package height and guide
bounds from production records, fits power-law trend curves for charting,
and answers single what-if simulations with the same formulas.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zcfg := zap.NewProductionConfig()
			if a.verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			a.cfg, err = config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.logger.Debug("config_loaded",
				zap.String("path", a.configPath),
				zap.String("bound_policy", a.cfg.BoundPolicy),
				zap.Int("workers", a.cfg.Workers),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newRunCmd(a),
		newTrendCmd(a),
		newSimulateCmd(a),
		newSuggestCmd(a),
		newConstantsCmd(a),
	)
	return root
}
