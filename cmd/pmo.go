// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"hostcheck/cli/internal/pmo"
)

// pmoCmd runs the PMO workflow without the product menu.
var pmoCmd = &cobra.Command{
	Use:   "pmo",
	Short: "Look up a host on a PMO deployment unit",
	Long: `The pmo command opens an ssh session to the deployment unit and lists the
matching host with du_ctl as root. ssh runs in your terminal so password and
MFA prompts work as usual.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		return runPMO(cmd.Context(), e)
	},
}

func runPMO(ctx context.Context, e *env) error {
	return pmo.New(e.runner, e.prompt, e.out, e.cfg.PMO).Run(ctx)
}

func init() {
	rootCmd.AddCommand(pmoCmd)
}
