// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"

	"hostcheck/cli/internal/config"
	"hostcheck/cli/internal/logging"
	"hostcheck/cli/internal/prompt"
	"hostcheck/cli/internal/runner"
)

// env bundles what every workflow needs for one run.
type env struct {
	cfg    config.Config
	out    *logging.Printer
	prompt prompt.Prompter
	runner runner.Runner
}

func newEnv() (*env, error) {
	cfg, path, err := loadConfig()
	if err != nil {
		return nil, err
	}
	out := logging.NewPrinter(os.Stdout, logging.NewRedactor())
	if verbose || cfg.Verbose {
		out.Printf("[DEBUG] config: %s", path)
	}
	return &env{
		cfg:    cfg,
		out:    out,
		prompt: prompt.Stdio(),
		runner: runner.NewExec(out),
	}, nil
}

func loadConfig() (config.Config, string, error) {
	if configPath != "" {
		c, err := config.LoadFile(configPath)
		return c, configPath, err
	}
	p, err := config.Path()
	if err != nil {
		return config.Default(), "", fmt.Errorf("locating config: %w", err)
	}
	c, err := config.LoadFile(p)
	return c, p, err
}
