// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package pcd

import (
	"github.com/alessio/shellescape"

	"hostcheck/cli/internal/region"
	"hostcheck/cli/internal/runner"
)

// The dump scripts run under bash -lc inside the resmgr container so that
// $CUSTOMER_ID and $REGION_ID expand from the pod's environment.
const (
	dbListScript         = `consul-dump-yaml --start-key "customers/$CUSTOMER_ID/regions/$REGION_ID/db"`
	dbServerScriptPrefix = `consul-dump-yaml --start-key "customers/$CUSTOMER_ID/dbservers/"`
)

func (w *Workflow) loginCommand(c region.Cluster) runner.Command {
	return runner.New("saml2aws", "login",
		"--region", c.Region,
		"--role="+w.Config.Role,
		"--profile", w.Config.Profile,
	)
}

func (w *Workflow) kubeconfigCommand(c region.Cluster) runner.Command {
	return runner.New("aws", "eks", "update-kubeconfig",
		"--region", c.Region,
		"--name", c.Name,
		"--profile", w.Config.Profile,
	)
}

func (w *Workflow) resmgrExec(ns string, interactive bool, argv ...string) runner.Command {
	args := []string{"exec"}
	if interactive {
		args = append(args, "-it")
	}
	args = append(args, "deploy/"+w.Config.ResmgrDeployment)
	if w.Config.ResmgrContainer != "" {
		args = append(args, "-c", w.Config.ResmgrContainer)
	}
	args = append(args, "-n", ns, "--")
	return runner.New("kubectl", append(args, argv...)...)
}

func (w *Workflow) dumpCommand(ns, script string) runner.Command {
	return w.resmgrExec(ns, false, "bash", "-lc", script)
}

func (w *Workflow) shellCommand(ns string) runner.Command {
	return w.resmgrExec(ns, true, "bash")
}

// dbServerScript embeds id shell-quoted so it cannot break out of the script.
func dbServerScript(id string) string {
	return dbServerScriptPrefix + shellescape.Quote(id)
}
