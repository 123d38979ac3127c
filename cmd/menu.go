// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"

	herrors "hostcheck/cli/internal/errors"
)

// runMenu shows the numbered product menu and runs the chosen workflow.
func runMenu(cmd *cobra.Command, e *env) error {
	e.out.Println("Select Product:")
	e.out.Println("1. PMK")
	e.out.Println("2. PMO")
	e.out.Println("3. PCD")
	choice, err := e.prompt.Line("Enter choice (1/2/3): ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return runPMK(cmd.Context(), e)
	case "2":
		return runPMO(cmd.Context(), e)
	case "3":
		return runPCD(cmd.Context(), e)
	default:
		e.out.Fail("Invalid choice")
		return herrors.New(herrors.InvalidInput, "invalid choice")
	}
}
