// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConstantsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Print the effective constants table and bound policy as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(map[string]any{
				"constants":    a.cfg.Constants,
				"bound_policy": a.cfg.Policy().String(),
			})
		},
	}
}
