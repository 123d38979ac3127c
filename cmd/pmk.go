// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"hostcheck/cli/internal/kube"
	"hostcheck/cli/internal/pmk"
)

// pmkCmd runs the PMK workflow without the product menu.
var pmkCmd = &cobra.Command{
	Use:   "pmk",
	Short: "Look up a host in a PMK deployment",
	Long: `The pmk command finds the mysqld-exporter pod in the given namespace of the
cluster selected by your kubeconfig and runs the host status query through it.

Export KUBECONFIG with an absolute path before running.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		return runPMK(cmd.Context(), e)
	},
}

// kubeconfigPods loads kubeconfig only when a pod lookup is needed, so
// prompts come first as they do for the other products.
type kubeconfigPods struct{}

func (kubeconfigPods) FindPod(ctx context.Context, namespace, fragment string) (string, error) {
	cs, err := kube.NewClientset()
	if err != nil {
		return "", err
	}
	return kube.NewLocator(cs).FindPod(ctx, namespace, fragment)
}

func runPMK(ctx context.Context, e *env) error {
	e.out.Notice("Please ensure you have KUBECONFIG exported with absolute path.")
	return pmk.New(e.runner, e.prompt, e.out, kubeconfigPods{}, e.cfg.PMK).Run(ctx)
}

func init() {
	rootCmd.AddCommand(pmkCmd)
}
