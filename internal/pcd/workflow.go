// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package pcd implements the PCD host status workflow: log in to AWS, refresh
// kubeconfig for the region's EKS cluster, resolve the customer's dbserver and
// its admin password from Consul via the resmgr pod, and run one read-only
// query against the resmgr database.
//
// The workflow is strictly sequential. Each step's output feeds the next, and
// the admin password is carried between steps as a return value only.
package pcd

import (
	"context"
	"fmt"
	"strings"

	"hostcheck/cli/internal/config"
	herrors "hostcheck/cli/internal/errors"
	"hostcheck/cli/internal/logging"
	"hostcheck/cli/internal/prompt"
	"hostcheck/cli/internal/region"
	"hostcheck/cli/internal/resmgr"
	"hostcheck/cli/internal/runner"
)

// Workflow wires the PCD steps to their collaborators.
type Workflow struct {
	Runner runner.Runner
	Prompt prompt.Prompter
	Out    *logging.Printer
	Config config.PCDConfig
}

// New creates a Workflow.
func New(r runner.Runner, p prompt.Prompter, out *logging.Printer, cfg config.PCDConfig) *Workflow {
	return &Workflow{Runner: r, Prompt: p, Out: out, Config: cfg}
}

// Run executes every step in order. Failures are printed as they happen; the
// returned error is an *errors.E describing why the run stopped.
func (w *Workflow) Run(ctx context.Context) error {
	cluster, err := w.selectRegion()
	if err != nil {
		return err
	}
	if err := w.authenticate(ctx, cluster); err != nil {
		return err
	}
	w.refreshClusterConfig(ctx, cluster)

	ns, err := w.require("Enter namespace: ", "Namespace required")
	if err != nil {
		return err
	}

	dbServerID, err := w.resolve(ctx, ns, dbServerLookup)
	if err != nil {
		return err
	}
	adminPass, err := w.resolve(ctx, ns, adminPassLookup(dbServerID))
	if err != nil {
		return err
	}

	hostID, err := w.require("Enter host ID: ", "host ID required")
	if err != nil {
		return err
	}

	out, err := w.query(ctx, ns, adminPass, hostID)
	if err != nil {
		return err
	}
	resmgr.Report(w.Out, out)
	return nil
}

func (w *Workflow) fail(kind herrors.Kind, msg string) error {
	w.Out.Fail("%s", msg)
	return herrors.New(kind, msg)
}

func (w *Workflow) selectRegion() (region.Cluster, error) {
	sel, err := w.Prompt.Line(fmt.Sprintf("Enter region (%s) [default: %s]: ",
		strings.Join(region.Supported(), "/"), region.Default))
	if err != nil {
		return region.Cluster{}, err
	}
	if sel == "" {
		sel = region.Default
	}
	c, err := region.Resolve(sel)
	if err != nil {
		w.Out.Fail("Invalid region")
		return region.Cluster{}, err
	}
	return c, nil
}

func (w *Workflow) authenticate(ctx context.Context, c region.Cluster) error {
	w.Out.Println("Note: saml2aws will prompt for your IdP/MFA. Complete that in this terminal.")
	res := w.Runner.Run(ctx, w.loginCommand(c), runner.Interactive)
	if !res.OK {
		w.Out.Fail("saml2aws login failed. Not retrying.")
		return herrors.Wrap(herrors.CommandFailed, "saml2aws login failed", res.Err)
	}
	return nil
}

// refreshClusterConfig never stops the run: kubeconfig may already be valid
// from an earlier session.
func (w *Workflow) refreshClusterConfig(ctx context.Context, c region.Cluster) {
	res := w.Runner.Run(ctx, w.kubeconfigCommand(c), runner.Quiet)
	if !res.OK {
		w.Out.Warn("kubeconfig update failed; continuing with the existing kubeconfig.")
	}
}

func (w *Workflow) require(promptText, missing string) (string, error) {
	v, err := w.Prompt.Line(promptText)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", w.fail(herrors.InvalidInput, missing)
	}
	return v, nil
}

func (w *Workflow) query(ctx context.Context, ns, adminPass, hostID string) (string, error) {
	target := resmgr.Target{
		Namespace:  ns,
		Deployment: w.Config.ExporterDeployment,
		Container:  w.Config.ExporterContainer,
		Database:   w.Config.Database,
	}
	cred := resmgr.Credentials{User: w.Config.DBUser, Password: adminPass}
	res := w.Runner.Run(ctx, resmgr.ExecCommand(target, cred, resmgr.HostStatusQuery(hostID)), runner.Capture)
	if !res.OK {
		w.Out.Println(logging.FormatQueryFailure(res.Stderr + "\n" + res.Stdout))
		return "", herrors.Wrap(herrors.QueryFailed, "MySQL command failed", res.Err)
	}
	return res.Stdout, nil
}
