// Package xdg provides helpers to resolve XDG Base Directory paths for hostcheck.
// It falls back to the traditional ~/.config location when XDG_CONFIG_HOME is
// not set.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "hostcheck"

// ConfigHome returns the XDG config base directory without creating it.
func ConfigHome() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return base, nil
}

// ConfigDir returns the XDG config directory for hostcheck.
// The directory is created with private permissions (0700) if missing.
func ConfigDir() (string, error) {
	base, err := ConfigHome()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
