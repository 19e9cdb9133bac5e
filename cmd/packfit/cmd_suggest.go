// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/packfit/record"
	"github.com/katalvlaran/packfit/simulate"
	"github.com/spf13/cobra"
)

var errNoSuggestion = errors.New("weight and a positive specific gravity are required")

func newSuggestCmd(a *app) *cobra.Command {
	var weight, sg string
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a pouch footprint from weight and specific gravity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := simulate.Suggest(record.CoerceFloat(weight), record.CoerceFloat(sg), a.cfg.Constants)
			if !ok {
				return errNoSuggestion
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ideal_width\t%.1f\nideal_height\t%.1f\nvolume\t%.2f\n", s.Width, s.Height, s.Volume)
			return nil
		},
	}
	cmd.Flags().StringVar(&weight, "weight", "", "fill weight (g)")
	cmd.Flags().StringVar(&sg, "sg", "", "specific gravity")
	return cmd
}
