package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestClearPreviousLines(t *testing.T) {
	tests := []struct {
		name       string
		textLength int
		width      int
		wantUps    int
	}{
		{name: "short text", textLength: 10, width: 80, wantUps: 1},
		{name: "wraps twice", textLength: 161, width: 80, wantUps: 3},
		{name: "zero length", textLength: 0, width: 80, wantUps: 1},
		{name: "bad width falls back", textLength: 100, width: 0, wantUps: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ClearPreviousLines(&buf, tt.textLength, tt.width)
			if got := strings.Count(buf.String(), "\x1b[1A"); got != tt.wantUps {
				t.Errorf("moved up %d lines, want %d", got, tt.wantUps)
			}
			if got := strings.Count(buf.String(), "\x1b[2K"); got != tt.wantUps+1 {
				t.Errorf("cleared %d lines, want %d", got, tt.wantUps+1)
			}
		})
	}
}

func TestIsTerminalNonFile(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("IsTerminal(buffer) = true")
	}
	if got := Width(&bytes.Buffer{}); got != 80 {
		t.Errorf("Width(buffer) = %d, want 80", got)
	}
}

func TestSpinnerFrameCycles(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{0, "| waiting"},
		{1, "/ waiting"},
		{3, "\\ waiting"},
		{4, "| waiting"},
	}
	for _, tt := range tests {
		if got := spinnerFrame(tt.i, "waiting"); got != tt.want {
			t.Errorf("spinnerFrame(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}

func TestStartSpinnerStopIsIdempotent(t *testing.T) {
	stop := StartSpinner("waiting")
	stop()
	stop()
}
