// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package pmo

import (
	"bytes"
	"context"
	"reflect"
	"testing"

	"hostcheck/cli/internal/config"
	herrors "hostcheck/cli/internal/errors"
	"hostcheck/cli/internal/logging"
	"hostcheck/cli/internal/prompt/prompttest"
	"hostcheck/cli/internal/runner"
	"hostcheck/cli/internal/runner/runnertest"
)

func newWorkflow(r *runnertest.Fake, cfg config.PMOConfig, answers ...string) *Workflow {
	return New(r, prompttest.New(answers...), logging.NewPrinter(&bytes.Buffer{}, nil), cfg)
}

func TestRemoteScript(t *testing.T) {
	w := newWorkflow(&runnertest.Fake{}, config.Default().PMO)

	tests := []struct {
		name   string
		hostID string
		want   string
	}{
		{
			name:   "plain id",
			hostID: "h-1",
			want: `sudo su - -c 'source admin_admin.rc 2>/dev/null || true; ` +
				`/opt/pf9/du-tools/du-ctl/du_ctl --format table host list | grep -F h-1'`,
		},
		{
			name:   "id with shell metacharacters stays one argument",
			hostID: "a;b",
			want: `sudo su - -c 'source admin_admin.rc 2>/dev/null || true; ` +
				`/opt/pf9/du-tools/du-ctl/du_ctl --format table host list | grep -F '"'"'a;b'"'"''`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.RemoteScript(tt.hostID); got != tt.want {
				t.Errorf("RemoteScript() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	cfg := config.Default().PMO
	cfg.SSHUser = "ops"
	r := &runnertest.Fake{}
	w := newWorkflow(r, cfg, "du1.example.net", "h-1")

	if err := w.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(r.Calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(r.Calls))
	}
	call := r.Calls[0]
	if call.Mode != runner.Interactive {
		t.Errorf("mode = %v, want interactive", call.Mode)
	}
	want := []string{"ssh", "-tt", "-o", "StrictHostKeyChecking=accept-new", "ops@du1.example.net", w.RemoteScript("h-1")}
	if !reflect.DeepEqual(call.Command.Argv(), want) {
		t.Errorf("argv = %v\nwant %v", call.Command.Argv(), want)
	}
}

func TestRunWithoutUser(t *testing.T) {
	r := &runnertest.Fake{}
	w := newWorkflow(r, config.Default().PMO, "du1.example.net", "h-1")

	if err := w.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := r.Calls[0].Command.Args[3]; got != "du1.example.net" {
		t.Errorf("destination = %q", got)
	}
}

func TestRunRejectsInput(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
	}{
		{"empty fqdn", []string{"", "h-1"}},
		{"empty host", []string{"du1", ""}},
		{"option-like fqdn", []string{"-oProxyCommand=x", "h-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &runnertest.Fake{}
			w := newWorkflow(r, config.Default().PMO, tt.answers...)
			if err := w.Run(context.Background()); !herrors.Is(err, herrors.InvalidInput) {
				t.Errorf("Run() error = %v, want invalid input", err)
			}
			if len(r.Calls) != 0 {
				t.Errorf("ran %d commands, want none", len(r.Calls))
			}
		})
	}
}

func TestRunSSHFailure(t *testing.T) {
	r := (&runnertest.Fake{}).On("ssh", runnertest.Failed("Connection refused"))
	w := newWorkflow(r, config.Default().PMO, "du1", "h-1")

	if err := w.Run(context.Background()); !herrors.Is(err, herrors.CommandFailed) {
		t.Errorf("Run() error = %v, want command failed", err)
	}
}
