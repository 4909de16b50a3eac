// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the hubline CLI.
//
// Configuration is loaded from a single YAML file specified by:
//   - the HUBLINE_CONFIG environment variable, or
//   - the --config flag passed to the command
//
// There are no fallbacks or automatic discovery. This keeps configuration
// deterministic and auditable, with no hidden overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the connection parameters for the GitHub API.
type Config struct {
	// BaseURL is the API root. Empty means the public GitHub API.
	BaseURL string `yaml:"base_url,omitempty"`

	// Token is the personal access token sent on every request.
	// Optional: without a token, only public data is reachable and
	// rate limits are much lower.
	Token string `yaml:"token,omitempty"`
}

// Load reads the configuration file at path. When path is empty, the
// HUBLINE_CONFIG environment variable is consulted. An empty Config is
// returned when neither is set — unauthenticated access to the public
// API needs no configuration at all.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("HUBLINE_CONFIG")
	}
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &config, nil
}
