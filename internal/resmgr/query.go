// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package resmgr builds and reports the read-only host status query run
// against the resource manager's MySQL database.
package resmgr

import (
	"fmt"
	"strings"

	"hostcheck/cli/internal/logging"
	"hostcheck/cli/internal/runner"
	"hostcheck/cli/internal/table"
)

// HostStatusQuery returns the diagnostic query for one host.
//
// The mysql client only accepts a literal statement on its command line, so
// there is no placeholder binding available; hostID is embedded as a MySQL
// string literal with quotes and backslashes escaped.
func HostStatusQuery(hostID string) string {
	return fmt.Sprintf("SELECT id,hostname,responding FROM hosts WHERE id='%s';", EscapeString(hostID))
}

// EscapeString escapes s for use inside a single-quoted MySQL string literal.
func EscapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case 0:
			b.WriteString(`\0`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\x1a':
			b.WriteString(`\Z`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Target names the deployment and container that carry a mysql client.
type Target struct {
	Namespace  string
	Deployment string
	Container  string
	Database   string
}

// Credentials for the mysql client. The zero value runs mysql with the
// container's own defaults.
type Credentials struct {
	User     string
	Password string
}

// ExecCommand returns the kubectl command running query with mysql inside t.
func ExecCommand(t Target, cred Credentials, query string) runner.Command {
	args := []string{"exec", "-n", t.Namespace, "deploy/" + t.Deployment}
	if t.Container != "" {
		args = append(args, "-c", t.Container)
	}
	args = append(args, "--", "mysql", t.Database)
	if cred.User != "" {
		args = append(args, "-u", cred.User)
	}
	if cred.Password != "" {
		args = append(args, "-p"+cred.Password)
	}
	args = append(args, "-e", query)
	return runner.New("kubectl", args...)
}

// Report prints the query output as a table.
func Report(p *logging.Printer, output string) {
	p.Println()
	p.Success("Query result:")
	p.Raw(table.Format(output))
}
