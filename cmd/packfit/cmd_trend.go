// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"

	"github.com/katalvlaran/packfit/trend"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type curveJSON struct {
	Kind      string        `json:"kind"`
	A         float64       `json:"a"`
	B         float64       `json:"b"`
	MinVolume float64       `json:"min_volume"`
	MaxVolume float64       `json:"max_volume"`
	Points    int           `json:"points"`
	Samples   []trend.Point `json:"samples,omitempty"`
}

func newTrendCmd(a *app) *cobra.Command {
	var (
		bf      batchFlags
		samples int
	)
	cmd := &cobra.Command{
		Use:   "trend [records.csv|-]",
		Short: "Fit power-law trend curves (height and guides vs. volume)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runBatch(cmd, a, bf, args)
			if err != nil {
				return err
			}

			curves := trend.FitAll(res.Products)
			if len(curves) == 0 {
				a.logger.Warn("no_trend_curve", zap.String("run_id", res.RunID))
			}
			out := make([]curveJSON, 0, len(curves))
			for _, c := range curves {
				out = append(out, curveJSON{
					Kind:      c.Kind.String(),
					A:         c.A,
					B:         c.B,
					MinVolume: c.MinVolume,
					MaxVolume: c.MaxVolume,
					Points:    c.N,
					Samples:   c.Sample(samples),
				})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	bf.register(cmd)
	cmd.Flags().IntVar(&samples, "samples", 0, "sampled points per curve for drawing")
	return cmd
}
