// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package github

import "testing"

func TestQueryOptionsSerializeEmpty(t *testing.T) {
	options := NewSearchIssuesOptions().Build()
	if got := options.Serialize(); got != "" {
		t.Errorf("Serialize() = %q, want empty", got)
	}
}

func TestQueryOptionsSerializeInsertionOrder(t *testing.T) {
	options := NewSearchIssuesOptions().
		Sort(IssuesSortComments).
		Order(SortDesc).
		PerPage(50).
		Build()

	want := "sort=comments&order=desc&per_page=50"
	if got := options.Serialize(); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestQueryOptionsLastWriteWins(t *testing.T) {
	options := NewSearchIssuesOptions().
		PerPage(30).
		Sort(IssuesSortCreated).
		PerPage(50).
		Build()

	// per_page keeps its original position with the last value.
	want := "per_page=50&sort=created"
	if got := options.Serialize(); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestBuildSnapshotsBuilderState(t *testing.T) {
	builder := NewSearchIssuesOptions().PerPage(10)
	first := builder.Build()
	builder.PerPage(99).Sort(IssuesSortUpdated)

	if got := first.Serialize(); got != "per_page=10" {
		t.Errorf("first snapshot changed after further builder use: %q", got)
	}
	if got := builder.Build().Serialize(); got != "per_page=99&sort=updated" {
		t.Errorf("second snapshot = %q", got)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "comments", "comments"},
		{"search query", "repo:foo/bar is:open", "repo%3Afoo%2Fbar%20is%3Aopen"},
		{"ampersand and equals", "a&b=c", "a%26b%3Dc"},
		{"literal plus survives", "a+b", "a%2Bb"},
		{"unicode", "héllo", "h%C3%A9llo"},
		{"empty", "", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := escape(test.input); got != test.want {
				t.Errorf("escape(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}
