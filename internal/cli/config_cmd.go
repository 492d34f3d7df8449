// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long:  `Prints the configuration after defaults, config file, environment and flags have been merged.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if a.cfg.ConfigPath == "" {
				fmt.Fprintln(w, warnStyle("# no config file loaded (using defaults)"))
			} else {
				fmt.Fprintf(w, "# config file: %s\n", a.cfg.ConfigPath)
			}

			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(a.v.AllSettings()); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}

			return enc.Close()
		},
	}
}
