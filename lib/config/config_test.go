// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hubline.yaml")
	content := "base_url: https://github.example.com/api/v3\ntoken: secret-token\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.BaseURL != "https://github.example.com/api/v3" {
		t.Errorf("BaseURL = %q", config.BaseURL)
	}
	if config.Token != "secret-token" {
		t.Errorf("Token = %q", config.Token)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hubline.yaml")
	if err := os.WriteFile(path, []byte("token: env-token\n"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("HUBLINE_CONFIG", path)

	config, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.Token != "env-token" {
		t.Errorf("Token = %q, want %q", config.Token, "env-token")
	}
}

func TestLoadUnconfigured(t *testing.T) {
	t.Setenv("HUBLINE_CONFIG", "")

	config, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.Token != "" || config.BaseURL != "" {
		t.Errorf("expected empty config, got %+v", config)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hubline.yaml")
	if err := os.WriteFile(path, []byte("token: [unclosed\n"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
