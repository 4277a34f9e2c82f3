// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
)

// GlobalConfigDir returns the directory for global chartspec configuration.
// It uses $XDG_CONFIG_HOME/chartspec if set, otherwise ~/.config/chartspec.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chartspec")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "chartspec")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// LoadGlobal loads the global config file.
// If the file does not exist, it returns a zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	return loadFile(GlobalConfigPath())
}

// LoadMerged loads the global config and the config in dir, with values from
// dir taking precedence.
func LoadMerged(dir string) (*Config, error) {
	global, err := LoadGlobal()
	if err != nil {
		return nil, err
	}
	repo, err := Load(dir)
	if err != nil {
		return nil, err
	}
	return Merge(global, repo), nil
}
