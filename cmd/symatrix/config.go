// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show effective configuration as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := resolveConfig(cmd)
				if err != nil {
					return err
				}

				return cfg.Encode(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate the configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := resolveConfig(cmd); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")

				return nil
			},
		},
	)

	return configCmd
}
