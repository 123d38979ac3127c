// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrinterPrefixes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, nil)

	p.Step("Running: %s", "aws sts get-caller-identity")
	p.Success("done")
	p.Warn("partial")
	p.Fail("broken")

	out := buf.String()
	for _, want := range []string{
		PrefixStep + " Running: aws sts get-caller-identity",
		PrefixSuccess + " done",
		PrefixWarn + " partial",
		PrefixFail + " broken",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrinterRedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	r := NewRedactor()
	r.Add("Secr3t!")
	p := NewPrinter(&buf, r)

	p.Printf("the password is %s", "Secr3t!")
	p.Block("STDERR", "mysql -u root -pSecr3t! failed\n")
	p.Fail("value %q", "Secr3t!")

	if strings.Contains(buf.String(), "Secr3t!") {
		t.Errorf("secret leaked:\n%s", buf.String())
	}
}

func TestPrinterBlockSkipsEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, nil)
	p.Block("STDOUT", "  \n")
	if buf.Len() != 0 {
		t.Errorf("Block() wrote %q for empty text", buf.String())
	}
}

func TestPresentError(t *testing.T) {
	if got := PresentError("query", nil); got != "" {
		t.Errorf("PresentError(nil) = %q, want empty", got)
	}
	got := PresentError("query", errors.New("mysql -pabc failed: exit status 1"))
	if got != "query: mysql -p*** failed: exit status 1" {
		t.Errorf("PresentError() = %q", got)
	}
}

func TestParseQueryError(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   QueryErrorType
	}{
		{"auth", "ERROR 1045 (28000): Access denied for user 'root'@'localhost'", QueryErrorAuth},
		{"unreachable", "ERROR 2003 (HY000): Can't connect to MySQL server on 'db'", QueryErrorUnreachable},
		{"permission", "ERROR 1142 (42000): SELECT command denied to user", QueryErrorPermission},
		{"container", `error: container mysqld-exporter not found in pod`, QueryErrorContainer},
		{"unknown", "exit status 137", QueryErrorUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseQueryError(tt.output); got != tt.want {
				t.Errorf("ParseQueryError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatQueryFailure(t *testing.T) {
	out := FormatQueryFailure("mysql: [Warning] Using a password on the command line\nadmin_pass: hunter2")
	if strings.Contains(out, "hunter2") {
		t.Errorf("FormatQueryFailure echoed output:\n%s", out)
	}
	if !strings.Contains(out, "Possible causes: wrong admin_pass") {
		t.Errorf("FormatQueryFailure missing generic hint:\n%s", out)
	}

	out = FormatQueryFailure("ERROR 1045 (28000): Access denied for user 'root'@'localhost'")
	if !strings.Contains(out, "rejected the credentials") {
		t.Errorf("FormatQueryFailure missing auth hint:\n%s", out)
	}
}
