// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/hubline/hubline/lib/config"
	"github.com/hubline/hubline/lib/github"
)

// ClientFlags holds the connection flags shared by every command that
// talks to the GitHub API. Flag values override the config file, which
// overrides environment defaults.
type ClientFlags struct {
	ConfigPath string
	BaseURL    string
	Token      string
}

// Register adds the shared connection flags to flagSet.
func (flags *ClientFlags) Register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&flags.ConfigPath, "config", "", "path to config file (default $HUBLINE_CONFIG)")
	flagSet.StringVar(&flags.BaseURL, "base-url", "", "API base URL (default https://api.github.com)")
	flagSet.StringVar(&flags.Token, "token", "", "access token (default from config, then $GITHUB_TOKEN)")
}

// NewClient resolves the connection settings and builds a GitHub API
// client. Without a token the client works against public data only.
func (flags *ClientFlags) NewClient(logger *slog.Logger) (*github.Client, error) {
	loaded, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	baseURL := flags.BaseURL
	if baseURL == "" {
		baseURL = loaded.BaseURL
	}

	token := flags.Token
	if token == "" {
		token = loaded.Token
	}
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	return github.NewClient(github.Config{
		BaseURL: baseURL,
		Token:   token,
		Logger:  logger,
	})
}
