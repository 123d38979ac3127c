// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package pcd

import (
	"context"
	"strings"

	herrors "hostcheck/cli/internal/errors"
	"hostcheck/cli/internal/extract"
	"hostcheck/cli/internal/runner"
)

// lookup describes one Consul value resolved through the resmgr pod, with a
// manual fallback when the dump fails or cannot be parsed.
type lookup struct {
	label  string // shown in messages, e.g. "dbserver id"
	what   string // dump description, e.g. "db list"
	script string
	key    extract.Key
	secret bool
}

var dbServerLookup = lookup{
	label:  "dbserver id",
	what:   "db list",
	script: dbListScript,
	key:    extract.DBServer,
}

func adminPassLookup(dbServerID string) lookup {
	return lookup{
		label:  "admin_pass",
		what:   "dbserver details",
		script: dbServerScript(dbServerID),
		key:    extract.AdminPass,
		secret: true,
	}
}

// resolve runs the dump for l and extracts its key. A failed or empty dump, or
// a dump without the key, drops the operator into a shell in the resmgr pod
// and asks for the value by hand. Secrets are registered with the printer's
// redactor as soon as they are known and never printed.
func (w *Workflow) resolve(ctx context.Context, ns string, l lookup) (string, error) {
	res := w.Runner.Run(ctx, w.dumpCommand(ns, l.script), runner.Capture)
	if !res.OK || strings.TrimSpace(res.Stdout) == "" {
		w.Out.Warn("consul-dump-yaml (%s) returned nothing or failed.", l.what)
		return w.manual(ctx, ns, l)
	}

	v, ok := extract.Extract(res.Stdout, l.key)
	if !ok {
		w.Out.Warn("Could not parse %s from consul output. Showing output:", l.label)
		w.Out.Println(res.Stdout)
		return w.manual(ctx, ns, l)
	}

	if l.secret {
		w.Out.Redactor().Add(v)
		w.Out.Success("%s retrieved (not displayed).", l.label)
	} else {
		w.Out.Success("Found %s: %s", l.label, v)
	}
	return v, nil
}

func (w *Workflow) manual(ctx context.Context, ns string, l lookup) (string, error) {
	w.Out.Println("Falling back to an interactive shell inside the resmgr pod for manual inspection.")
	w.Out.Println("Inside the pod, run:")
	w.Out.Println("  " + l.script)
	w.Out.Printf("Copy the %s, exit the shell and paste it when prompted.", l.label)

	if res := w.Runner.Run(ctx, w.shellCommand(ns), runner.Interactive); !res.OK {
		w.Out.Warn("Interactive shell exited with an error.")
	}

	ask := w.Prompt.Line
	if l.secret {
		ask = w.Prompt.Secret
	}
	v, err := ask("Enter " + l.label + " (copied from inside pod): ")
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", w.fail(herrors.MissingValue, "No "+l.label+" provided. Aborting.")
	}
	if l.secret {
		w.Out.Redactor().Add(v)
	}
	return v, nil
}
