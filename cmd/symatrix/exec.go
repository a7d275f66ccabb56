// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec COMMAND...",
		Short: "Run calculator commands given as arguments",
		Example: `
# Multiply and evaluate
symatrix exec '[[x,1][2,y]]' '[[1,0][0,1]]' '*' x=2 y=3 =
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			sess, err := newSession(cmd, cfg)
			if err != nil {
				return err
			}
			for _, a := range args {
				if sess.Exec(a) {
					break
				}
			}

			return nil
		},
	}
}
