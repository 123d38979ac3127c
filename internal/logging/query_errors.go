// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"strings"

	"github.com/pterm/pterm"
)

// QueryErrorType represents the likely cause of a failed diagnostic query.
type QueryErrorType int

const (
	QueryErrorUnknown QueryErrorType = iota
	QueryErrorAuth
	QueryErrorUnreachable
	QueryErrorPermission
	QueryErrorContainer
)

// ParseQueryError categorizes the captured output of a failed mysql invocation.
func ParseQueryError(output string) QueryErrorType {
	lower := strings.ToLower(output)

	if strings.Contains(lower, "access denied for user") {
		return QueryErrorAuth
	}
	if strings.Contains(lower, "can't connect") || strings.Contains(lower, "lost connection") ||
		strings.Contains(lower, "unknown mysql server host") {
		return QueryErrorUnreachable
	}
	if strings.Contains(lower, "command denied") || strings.Contains(lower, "doesn't exist") {
		return QueryErrorPermission
	}
	if strings.Contains(lower, "container not found") || strings.Contains(lower, "notfound") ||
		strings.Contains(lower, "not found") {
		return QueryErrorContainer
	}

	return QueryErrorUnknown
}

// FormatQueryFailure renders likely causes for a failed query. The captured
// output is only used for classification; the runner prints it separately.
func FormatQueryFailure(output string) string {
	errType := ParseQueryError(output)

	var builder strings.Builder

	builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(PrefixFail + " MySQL command failed"))
	builder.WriteString("\n")

	switch errType {
	case QueryErrorAuth:
		builder.WriteString("The database rejected the credentials.\n")
		builder.WriteString("  • admin_pass may be wrong or stale\n")
		builder.WriteString("  • the dbserver id may point at a different server\n")
	case QueryErrorUnreachable:
		builder.WriteString("mysql could not reach the database server.\n")
		builder.WriteString("  • the database may be down or restarting\n")
		builder.WriteString("  • network policy may block the exporter pod\n")
	case QueryErrorPermission:
		builder.WriteString("The query was not permitted.\n")
		builder.WriteString("  • the user lacks SELECT on resmgr.hosts\n")
		builder.WriteString("  • the schema may differ in this deployment\n")
	case QueryErrorContainer:
		builder.WriteString("The exporter deployment or container was not found.\n")
		builder.WriteString("  • check the namespace\n")
	default:
		builder.WriteString("Possible causes: wrong admin_pass, mysql not reachable, or permissions.\n")
	}

	return builder.String()
}
