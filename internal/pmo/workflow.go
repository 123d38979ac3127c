// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package pmo implements the PMO host lookup: one interactive ssh session to
// the deployment unit that lists hosts with du_ctl and filters for one id.
package pmo

import (
	"context"
	"fmt"
	"strings"

	"github.com/alessio/shellescape"

	"hostcheck/cli/internal/config"
	herrors "hostcheck/cli/internal/errors"
	"hostcheck/cli/internal/logging"
	"hostcheck/cli/internal/prompt"
	"hostcheck/cli/internal/runner"
)

// Workflow wires the PMO step to its collaborators.
type Workflow struct {
	Runner runner.Runner
	Prompt prompt.Prompter
	Out    *logging.Printer
	Config config.PMOConfig
}

// New creates a Workflow.
func New(r runner.Runner, p prompt.Prompter, out *logging.Printer, cfg config.PMOConfig) *Workflow {
	return &Workflow{Runner: r, Prompt: p, Out: out, Config: cfg}
}

// Run prompts for the DU FQDN and host id and opens the ssh session.
// ssh runs attached to the terminal so password and MFA prompts work.
func (w *Workflow) Run(ctx context.Context) error {
	fqdn, err := w.Prompt.Line("Enter FQDN: ")
	if err != nil {
		return err
	}
	hostID, err := w.Prompt.Line("Enter host ID: ")
	if err != nil {
		return err
	}
	if fqdn == "" || hostID == "" {
		w.Out.Fail("FQDN and host ID are required")
		return herrors.New(herrors.InvalidInput, "FQDN and host ID are required")
	}
	if strings.HasPrefix(fqdn, "-") {
		w.Out.Fail("Invalid FQDN %q", fqdn)
		return herrors.New(herrors.InvalidInput, "invalid FQDN")
	}

	res := w.Runner.Run(ctx, w.sshCommand(fqdn, hostID), runner.Interactive)
	if !res.OK {
		w.Out.Fail("ssh session failed.")
		return herrors.Wrap(herrors.CommandFailed, "ssh session failed", res.Err)
	}
	return nil
}

// RemoteScript is the command run as root on the DU. hostID is shell-quoted.
func (w *Workflow) RemoteScript(hostID string) string {
	inner := fmt.Sprintf("source %s 2>/dev/null || true; %s --format table host list | grep -F %s",
		shellescape.Quote(w.Config.RCFile), shellescape.Quote(w.Config.DUCtl), shellescape.Quote(hostID))
	return "sudo su - -c " + shellescape.Quote(inner)
}

func (w *Workflow) sshCommand(fqdn, hostID string) runner.Command {
	dest := fqdn
	if w.Config.SSHUser != "" {
		dest = w.Config.SSHUser + "@" + fqdn
	}
	return runner.New("ssh", "-tt", "-o", "StrictHostKeyChecking=accept-new", dest, w.RemoteScript(hostID))
}
