// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/packfit/bounds"
	"github.com/katalvlaran/packfit/pipeline"
	"github.com/katalvlaran/packfit/record"
	"github.com/katalvlaran/packfit/tabular"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// batchFlags are shared by commands that process a record file.
type batchFlags struct {
	policy  string
	workers int
	suggest bool
}

func (f *batchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.policy, "policy", "", "bound policy: ratio | population-spread (default from config)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "derivation workers (default from config)")
}

func newRunCmd(a *app) *cobra.Command {
	var (
		bf     batchFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "run [records.csv|-]",
		Short: "Derive heights and guide bounds for a batch of records",
		Long: `Reads production records (CSV, optional BOM, localized headers allowed),
derives width, length, area, volume, height, upper_height and lower_height,
and writes a BOM-prefixed UTF-8 CSV.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runBatch(cmd, a, bf, args)
			if err != nil {
				return err
			}

			if err := export(cmd.OutOrStdout(), output, res.Products); err != nil {
				return err
			}
			a.logger.Info("export_written",
				zap.String("run_id", res.RunID),
				zap.String("output", output),
				zap.Int("rows", len(res.Products)),
			)
			return nil
		},
	}
	bf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV path (default stdout)")
	cmd.Flags().BoolVar(&bf.suggest, "suggest", false, "add ideal_width and ideal_height columns")
	return cmd
}

// export writes products to path, or to stdout when path is empty or "-".
// The file's close error is returned.
func export(stdout io.Writer, path string, products []record.Product) (err error) {
	if path == "" || path == "-" {
		return tabular.Write(stdout, products)
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return tabular.Write(fh, products)
}

// runBatch reads the input named by args (stdin when absent or "-") and
// runs the pipeline with config plus flag overrides.
func runBatch(cmd *cobra.Command, a *app, bf batchFlags, args []string) (pipeline.Result, error) {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		fh, err := os.Open(args[0])
		if err != nil {
			return pipeline.Result{}, fmt.Errorf("open %s: %w", args[0], err)
		}
		defer fh.Close()
		in = fh
	}

	tbl, err := tabular.Read(in, a.cfg.Columns)
	if err != nil {
		return pipeline.Result{}, err
	}

	policy := a.cfg.Policy()
	if bf.policy != "" {
		if policy, err = bounds.ParsePolicy(bf.policy); err != nil {
			return pipeline.Result{}, err
		}
	}
	workers := a.cfg.Workers
	if bf.workers > 0 {
		workers = bf.workers
	}

	opts := []pipeline.Option{
		pipeline.WithTable(a.cfg.Constants),
		pipeline.WithPolicy(policy),
		pipeline.WithClassifier(a.cfg.Classifier),
		pipeline.WithWorkers(workers),
		pipeline.WithLogger(a.logger),
	}
	if bf.suggest {
		opts = append(opts, pipeline.WithSuggestions())
	}
	return pipeline.Run(tbl, opts...)
}
