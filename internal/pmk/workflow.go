// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package pmk implements the PMK host status lookup: find the mysqld-exporter
// pod in the operator's current cluster and query resmgr through it.
package pmk

import (
	"context"

	"hostcheck/cli/internal/config"
	herrors "hostcheck/cli/internal/errors"
	"hostcheck/cli/internal/logging"
	"hostcheck/cli/internal/prompt"
	"hostcheck/cli/internal/resmgr"
	"hostcheck/cli/internal/runner"
)

// PodFinder locates a pod by name fragment.
type PodFinder interface {
	FindPod(ctx context.Context, namespace, fragment string) (string, error)
}

// Workflow wires the PMK steps to their collaborators.
type Workflow struct {
	Runner runner.Runner
	Prompt prompt.Prompter
	Out    *logging.Printer
	Pods   PodFinder
	Config config.PMKConfig
}

// New creates a Workflow.
func New(r runner.Runner, p prompt.Prompter, out *logging.Printer, pods PodFinder, cfg config.PMKConfig) *Workflow {
	return &Workflow{Runner: r, Prompt: p, Out: out, Pods: pods, Config: cfg}
}

// Run prompts for namespace and host, then prints the host's status row.
func (w *Workflow) Run(ctx context.Context) error {
	ns, err := w.Prompt.Line("Enter namespace: ")
	if err != nil {
		return err
	}
	hostID, err := w.Prompt.Line("Enter host ID: ")
	if err != nil {
		return err
	}
	if ns == "" || hostID == "" {
		w.Out.Fail("Namespace and host ID are required")
		return herrors.New(herrors.InvalidInput, "namespace and host ID are required")
	}

	pod, err := w.Pods.FindPod(ctx, ns, w.Config.PodMatch)
	if err != nil {
		w.Out.Fail("No %s pod found in namespace %s", w.Config.PodMatch, ns)
		return herrors.Wrap(herrors.MissingValue, "no "+w.Config.PodMatch+" pod", err)
	}
	w.Out.Success("Using pod: %s", pod)

	target := resmgr.Target{
		Namespace:  ns,
		Deployment: w.Config.ExporterDeployment,
		Container:  w.Config.ExporterContainer,
		Database:   w.Config.Database,
	}
	res := w.Runner.Run(ctx, resmgr.ExecCommand(target, resmgr.Credentials{}, resmgr.HostStatusQuery(hostID)), runner.Capture)
	if !res.OK {
		w.Out.Fail("MySQL query failed.")
		return herrors.Wrap(herrors.QueryFailed, "MySQL query failed", res.Err)
	}
	resmgr.Report(w.Out, res.Stdout)
	return nil
}
