// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for hostcheck.
// Run without a subcommand it shows the product menu; the pcd, pmk and pmo
// subcommands start a product workflow directly.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	herrors "hostcheck/cli/internal/errors"
	"hostcheck/cli/internal/logging"
)

var (
	showVersion bool
	verbose     bool
	configPath  string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hostcheck",
	Short: "Look up resource manager host status for PMK, PMO and PCD",
	Long: `hostcheck walks an operator through the steps needed to read a host's
status row from the resource manager database of a PMK, PMO or PCD deployment.

Run it without arguments to pick a product from the menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("hostcheck %s\n", Version)
			return nil
		}
		e, err := newEnv()
		if err != nil {
			return err
		}
		return runMenu(cmd, e)
	},
}

// Execute runs the CLI application. Workflow failures have already been
// printed by the time they reach here; anything else goes to stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	if err == nil || herrors.KindOf(err) != "" {
		return
	}
	fmt.Fprintln(w, logging.PresentError("Error", err))
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/hostcheck/config.yaml)")
}
