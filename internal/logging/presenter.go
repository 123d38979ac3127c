// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// Message prefixes. Every line the console prints on behalf of a workflow
// starts with one of these so failures are easy to spot in a scrollback.
const (
	PrefixStep    = "👉"
	PrefixSuccess = "✅"
	PrefixWarn    = "⚠"
	PrefixFail    = "❌"
)

// Printer writes operator-facing messages. Everything except Raw passes
// through the Redactor before it reaches the writer.
type Printer struct {
	out      io.Writer
	redactor *Redactor
}

// NewPrinter creates a Printer writing to out. A nil redactor still applies Mask.
func NewPrinter(out io.Writer, redactor *Redactor) *Printer {
	return &Printer{out: out, redactor: redactor}
}

// Redactor returns the redactor used by this printer.
func (p *Printer) Redactor() *Redactor { return p.redactor }

func (p *Printer) line(s string) {
	fmt.Fprintln(p.out, p.redactor.Redact(s))
}

// Println prints a plain line.
func (p *Printer) Println(a ...any) {
	p.line(strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
}

// Raw prints s unchanged. It is for query results and other data the
// operator must see exactly as the server returned it.
func (p *Printer) Raw(s string) {
	fmt.Fprintln(p.out, s)
}

// Printf prints a formatted plain line.
func (p *Printer) Printf(format string, a ...any) {
	p.line(fmt.Sprintf(format, a...))
}

// Step announces a command or workflow step.
func (p *Printer) Step(format string, a ...any) {
	p.Println()
	p.line(PrefixStep + " " + fmt.Sprintf(format, a...))
}

// Success prints a success message.
func (p *Printer) Success(format string, a ...any) {
	p.line(pterm.NewStyle(pterm.FgGreen).Sprint(PrefixSuccess + " " + fmt.Sprintf(format, a...)))
}

// Warn prints a recoverable problem.
func (p *Printer) Warn(format string, a ...any) {
	p.line(pterm.NewStyle(pterm.FgYellow).Sprint(PrefixWarn + " " + fmt.Sprintf(format, a...)))
}

// Fail prints a failure message.
func (p *Printer) Fail(format string, a ...any) {
	p.line(pterm.NewStyle(pterm.FgRed).Sprint(PrefixFail + " " + fmt.Sprintf(format, a...)))
}

// Notice prints a bold highlighted hint surrounded by blank lines.
func (p *Printer) Notice(text string) {
	p.Println()
	p.line(pterm.NewStyle(pterm.FgBlue, pterm.Bold).Sprint(text))
	p.Println()
}

// Block prints a labelled chunk of captured command output, e.g. STDOUT or STDERR.
// Empty text prints nothing.
func (p *Printer) Block(label, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	p.line(label + ":")
	p.line(strings.TrimRight(text, "\n"))
}

// PresentError formats an error for user display with masking.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", context, Mask(err.Error()))
}
