// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"strings"
	"testing"

	"github.com/hubline/hubline/lib/github"
)

func TestParseIssuesSort(t *testing.T) {
	valid := map[string]github.IssuesSort{
		"created":  github.IssuesSortCreated,
		"updated":  github.IssuesSortUpdated,
		"comments": github.IssuesSortComments,
	}
	for value, want := range valid {
		got, err := parseIssuesSort(value)
		if err != nil || got != want {
			t.Errorf("parseIssuesSort(%q) = (%q, %v), want (%q, nil)", value, got, err, want)
		}
	}

	if _, err := parseIssuesSort("commets"); err == nil {
		t.Fatal("expected error for misspelled sort value")
	} else if !strings.Contains(err.Error(), "commets") {
		t.Errorf("error = %q, should mention the bad value", err)
	}
}

func TestParseReposSort(t *testing.T) {
	valid := map[string]github.ReposSort{
		"stars":   github.ReposSortStars,
		"forks":   github.ReposSortForks,
		"updated": github.ReposSortUpdated,
	}
	for value, want := range valid {
		got, err := parseReposSort(value)
		if err != nil || got != want {
			t.Errorf("parseReposSort(%q) = (%q, %v), want (%q, nil)", value, got, err, want)
		}
	}

	if _, err := parseReposSort("starz"); err == nil {
		t.Fatal("expected error for invalid sort value")
	}
}

func TestParseOrder(t *testing.T) {
	if direction, err := parseOrder("asc"); err != nil || direction != github.SortAsc {
		t.Errorf("parseOrder(asc) = (%q, %v)", direction, err)
	}
	if direction, err := parseOrder("desc"); err != nil || direction != github.SortDesc {
		t.Errorf("parseOrder(desc) = (%q, %v)", direction, err)
	}
	if _, err := parseOrder("descending"); err == nil {
		t.Fatal("expected error for invalid order value")
	}
}
