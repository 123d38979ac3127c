// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"hostcheck/cli/internal/pcd"
)

// pcdCmd runs the PCD workflow without the product menu.
var pcdCmd = &cobra.Command{
	Use:   "pcd",
	Short: "Look up a host in a PCD region",
	Long: `The pcd command logs in with saml2aws, refreshes kubeconfig for the region's
EKS cluster, reads the customer's dbserver and admin_pass from Consul through
the resmgr pod and runs the host status query in mysqld-exporter.

If Consul output cannot be read, you are dropped into a shell in the resmgr pod
to look the value up by hand. admin_pass is never printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		return runPCD(cmd.Context(), e)
	},
}

func runPCD(ctx context.Context, e *env) error {
	return pcd.New(e.runner, e.prompt, e.out, e.cfg.PCD).Run(ctx)
}

func init() {
	rootCmd.AddCommand(pcdCmd)
}
