// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/packfit/simulate"
	"github.com/katalvlaran/packfit/trend"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		raw     struct{ weight, sg, width, length string }
		machine string
		seal    string
		data    string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Estimate volume and height for one hypothetical package",
		Long: `Evaluates one what-if package with exactly the formulas used for batch
records. With --data, the batch trend curves are evaluated at the simulated
volume so the point can be read against the historical chart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := simulate.ParseInput(simulate.RawInput{
				Weight:          raw.weight,
				SpecificGravity: raw.sg,
				Width:           raw.width,
				Length:          raw.length,
				Machine:         machine,
				Seal:            seal,
			}, a.cfg.Classifier)
			res := simulate.Run(in, a.cfg.Constants)
			a.logger.Debug("simulation",
				zap.Stringer("machine", in.Machine),
				zap.Stringer("seal", in.Seal),
				zap.Bool("has_height", res.Height != nil),
			)

			var curves []trend.Curve
			if data != "" {
				batch, err := runBatch(cmd, a, batchFlags{}, []string{data})
				if err != nil {
					return err
				}
				curves = trend.FitAll(batch.Products)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				payload := struct {
					simulate.Result
					Trend map[string]float64 `json:"trend,omitempty"`
				}{Result: res, Trend: evalCurves(curves, res.Volume)}
				return json.NewEncoder(out).Encode(payload)
			}

			fmt.Fprintf(out, "area\t%s\nvolume\t%s\nheight\t%s\n", fmtNum(res.Area), fmtNum(res.Volume), fmtNum(res.Height))
			for _, c := range curves {
				if res.Volume != nil {
					fmt.Fprintf(out, "trend_%s\t%.3f\n", c.Kind, c.Eval(*res.Volume))
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&raw.weight, "weight", "", "fill weight (g)")
	f.StringVar(&raw.sg, "sg", "", "specific gravity")
	f.StringVar(&raw.width, "width", "", "nominal width (mm)")
	f.StringVar(&raw.length, "length", "", "nominal length (mm)")
	f.StringVar(&machine, "machine", "", "machine type, e.g. FR-300")
	f.StringVar(&seal, "seal", "", "seal type: flat | bottleneck")
	f.StringVar(&data, "data", "", "record CSV whose trend curves are evaluated at the simulated volume")
	f.BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func evalCurves(curves []trend.Curve, volume *float64) map[string]float64 {
	if volume == nil || len(curves) == 0 {
		return nil
	}
	m := make(map[string]float64, len(curves))
	for _, c := range curves {
		m[c.Kind.String()] = c.Eval(*volume)
	}
	return m
}

func fmtNum(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.3f", *v)
}
