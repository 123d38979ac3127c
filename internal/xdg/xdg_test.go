package xdg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDirHonoursXDGConfigHome(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if want := filepath.Join(base, AppName); dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
	fi, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Mode().Perm() != 0o700 {
		t.Errorf("mode = %v, want 0700", fi.Mode().Perm())
	}
}

func TestConfigHomeFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	got, err := ConfigHome()
	if err != nil {
		t.Fatalf("ConfigHome() error = %v", err)
	}
	if want := filepath.Join(home, ".config"); got != want {
		t.Errorf("ConfigHome() = %q, want %q", got, want)
	}
}
