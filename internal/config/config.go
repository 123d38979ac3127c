// Package config loads and stores hostcheck settings in the XDG config dir.
// Only non-secret settings are kept here. Resolved credentials are never
// written anywhere.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"hostcheck/cli/internal/xdg"
)

// FileName is the config file name inside the hostcheck config dir.
const FileName = "config.yaml"

// Config holds non-sensitive CLI settings.
type Config struct {
	Verbose bool      `yaml:"verbose"`
	PCD     PCDConfig `yaml:"pcd"`
	PMK     PMKConfig `yaml:"pmk"`
	PMO     PMOConfig `yaml:"pmo"`
}

// PCDConfig holds the PCD workflow settings.
type PCDConfig struct {
	Role               string `yaml:"role"`
	Profile            string `yaml:"profile"`
	ResmgrDeployment   string `yaml:"resmgrDeployment"`
	ResmgrContainer    string `yaml:"resmgrContainer"`
	ExporterDeployment string `yaml:"exporterDeployment"`
	ExporterContainer  string `yaml:"exporterContainer"`
	Database           string `yaml:"database"`
	DBUser             string `yaml:"dbUser"`
}

// PMKConfig holds the PMK workflow settings.
type PMKConfig struct {
	PodMatch           string `yaml:"podMatch"`
	ExporterDeployment string `yaml:"exporterDeployment"`
	ExporterContainer  string `yaml:"exporterContainer"`
	Database           string `yaml:"database"`
}

// PMOConfig holds the PMO workflow settings. An empty SSHUser lets ssh pick
// the user from ~/.ssh/config or the local login.
type PMOConfig struct {
	SSHUser string `yaml:"sshUser"`
	RCFile  string `yaml:"rcFile"`
	DUCtl   string `yaml:"duCtl"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		PCD: PCDConfig{
			Role:               "arn:aws:iam::156041444395:role/PF9-ReadOnly",
			Profile:            "ops-cogs-pcd-prod-readonly",
			ResmgrDeployment:   "resmgr",
			ResmgrContainer:    "resmgr",
			ExporterDeployment: "mysqld-exporter",
			ExporterContainer:  "mysqld-exporter",
			Database:           "resmgr",
			DBUser:             "root",
		},
		PMK: PMKConfig{
			PodMatch:           "mysqld-exporter",
			ExporterDeployment: "mysqld-exporter",
			ExporterContainer:  "mysqld-exporter",
			Database:           "resmgr",
		},
		PMO: PMOConfig{
			RCFile: "admin_admin.rc",
			DUCtl:  "/opt/pf9/du-tools/du-ctl/du_ctl",
		},
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// LoadFile reads configuration from p over the defaults. Keys absent from the
// file keep their default values. A missing file is not an error.
func LoadFile(p string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", p, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", p, err)
	}
	return c, nil
}

// Validate rejects settings that would produce an unusable command line.
func (c Config) Validate() error {
	required := []struct{ key, value string }{
		{"pcd.role", c.PCD.Role},
		{"pcd.profile", c.PCD.Profile},
		{"pcd.resmgrDeployment", c.PCD.ResmgrDeployment},
		{"pcd.exporterDeployment", c.PCD.ExporterDeployment},
		{"pcd.database", c.PCD.Database},
		{"pmk.podMatch", c.PMK.PodMatch},
		{"pmk.exporterDeployment", c.PMK.ExporterDeployment},
		{"pmk.database", c.PMK.Database},
		{"pmo.duCtl", c.PMO.DUCtl},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s must not be empty", r.key)
		}
	}
	return nil
}

// Save writes configuration to p with 0600 permissions.
func Save(p string, c Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
