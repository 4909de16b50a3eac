// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package github

import "testing"

func TestRepoTuple(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{"public API", "https://api.github.com/repos/foo/bar", "foo", "bar", false},
		{"enterprise prefix", "https://github.example.com/api/v3/repos/acme/widgets", "acme", "widgets", false},
		{"trailing slash", "https://api.github.com/repos/foo/bar/", "foo", "bar", false},
		{"too short", "https://api.github.com/repos", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			item := IssueItem{RepositoryURL: test.url}
			owner, repo, err := item.RepoTuple()
			if test.wantErr {
				if err == nil {
					t.Fatalf("RepoTuple(%q): expected error", test.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("RepoTuple(%q): %v", test.url, err)
			}
			if owner != test.wantOwner || repo != test.wantRepo {
				t.Errorf("RepoTuple(%q) = (%q, %q), want (%q, %q)",
					test.url, owner, repo, test.wantOwner, test.wantRepo)
			}
		})
	}
}
