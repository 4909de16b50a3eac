// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"fmt"
	"net/url"
	"strings"
)

// User is a GitHub user reference. Appears in issue authors, assignees,
// and repository owners.
type User struct {
	Login   string `json:"login"`
	ID      int64  `json:"id"`
	HTMLURL string `json:"html_url"`
}

// Label is a GitHub issue label as returned by the API.
type Label struct {
	URL   string `json:"url"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// IssueItem is one issue (or pull request) record from issue search
// results. PullRequest is non-nil when the item is a pull request.
type IssueItem struct {
	URL           string           `json:"url"`
	RepositoryURL string           `json:"repository_url"`
	LabelsURL     string           `json:"labels_url"`
	CommentsURL   string           `json:"comments_url"`
	EventsURL     string           `json:"events_url"`
	HTMLURL       string           `json:"html_url"`
	ID            int64            `json:"id"`
	Number        int64            `json:"number"`
	Title         string           `json:"title"`
	User          User             `json:"user"`
	Labels        []Label          `json:"labels"`
	State         string           `json:"state"` // "open" or "closed"
	Locked        bool             `json:"locked"`
	Assignee      *User            `json:"assignee"`
	Assignees     []User           `json:"assignees"`
	Comments      int64            `json:"comments"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
	ClosedAt      *string          `json:"closed_at"`
	PullRequest   *PullRequestInfo `json:"pull_request"`
	Body          *string          `json:"body"`
}

// RepoTuple returns the (owner, repo) pair encoded in the item's
// repository URL ("…/repos/{owner}/{repo}").
func (item IssueItem) RepoTuple() (owner, repo string, err error) {
	parsed, err := url.Parse(item.RepositoryURL)
	if err != nil {
		return "", "", fmt.Errorf("github: parsing repository URL: %w", err)
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 {
		return "", "", fmt.Errorf("github: repository URL %q has no owner/repo path", item.RepositoryURL)
	}
	return segments[len(segments)-2], segments[len(segments)-1], nil
}

// PullRequestInfo links an issue search item to its pull request
// representations.
type PullRequestInfo struct {
	URL      string `json:"url"`
	HTMLURL  string `json:"html_url"`
	DiffURL  string `json:"diff_url"`
	PatchURL string `json:"patch_url"`
}

// Repo is one repository record from repository search results.
type Repo struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	FullName        string  `json:"full_name"`
	Owner           User    `json:"owner"`
	HTMLURL         string  `json:"html_url"`
	Description     *string `json:"description"`
	Fork            bool    `json:"fork"`
	Language        *string `json:"language"`
	StargazersCount int64   `json:"stargazers_count"`
	ForksCount      int64   `json:"forks_count"`
	OpenIssuesCount int64   `json:"open_issues_count"`
	DefaultBranch   string  `json:"default_branch"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}
