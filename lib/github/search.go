// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"
	"strconv"
)

// SearchResult is one decoded page of a search endpoint. TotalCount and
// IncompleteResults describe the whole result set as reported with that
// page; the pagination engine does not accumulate them across pages.
type SearchResult[D any] struct {
	TotalCount        int64 `json:"total_count"`
	IncompleteResults bool  `json:"incomplete_results"`
	Items             []D   `json:"items"`
}

// SearchService accesses the global search endpoints.
type SearchService struct {
	client *Client
}

// Search returns the search accessor.
func (client *Client) Search() *SearchService {
	return &SearchService{client: client}
}

// Issues returns the issue search accessor.
func (service *SearchService) Issues() *SearchIssuesService {
	return &SearchIssuesService{client: service.client}
}

// Repos returns the repository search accessor.
func (service *SearchService) Repos() *SearchReposService {
	return &SearchReposService{client: service.client}
}

// searchPath builds the path for a search endpoint: the serialized
// options come first, the percent-encoded free-text query last under
// the reserved key "q". The query is encoded even when it contains "&"
// or "=" of its own.
func searchPath(base, query string, options QueryOptions) string {
	serialized := options.Serialize()
	if serialized != "" {
		serialized += "&"
	}
	return base + "?" + serialized + "q=" + escape(query)
}

// searchStream builds the item stream for a search URL: each page is a
// SearchResult[D] and the extraction function lifts out its Items.
func searchStream[D any](client *Client, path string) *Stream[D] {
	return unfold(client.baseURL+path, pages[SearchResult[D]](client),
		func(page SearchResult[D]) []D { return page.Items })
}

// IssuesSort selects the ranking of issue search results.
type IssuesSort string

const (
	// IssuesSortCreated sorts by time created.
	IssuesSortCreated IssuesSort = "created"
	// IssuesSortUpdated sorts by last update.
	IssuesSortUpdated IssuesSort = "updated"
	// IssuesSortComments sorts by number of comments.
	IssuesSortComments IssuesSort = "comments"
)

func (sort IssuesSort) String() string { return string(sort) }

// SearchIssuesOptionsBuilder accumulates optional query parameters for
// issue search. Setters return the builder for chaining; Build snapshots
// the result. The builder itself is mutable and must not be reused after
// Build if the snapshot is meant to stay fixed — Build copies, so further
// setter calls affect only later Builds.
type SearchIssuesOptionsBuilder struct {
	params paramList
}

// NewSearchIssuesOptions returns an empty issue search options builder.
func NewSearchIssuesOptions() *SearchIssuesOptionsBuilder {
	return &SearchIssuesOptionsBuilder{}
}

// PerPage sets the page size (max 100, server default 30).
func (builder *SearchIssuesOptionsBuilder) PerPage(n int) *SearchIssuesOptionsBuilder {
	builder.params.set("per_page", strconv.Itoa(n))
	return builder
}

// Sort sets the result ranking.
func (builder *SearchIssuesOptionsBuilder) Sort(sort IssuesSort) *SearchIssuesOptionsBuilder {
	builder.params.set("sort", sort.String())
	return builder
}

// Order sets the sort direction.
func (builder *SearchIssuesOptionsBuilder) Order(direction SortDirection) *SearchIssuesOptionsBuilder {
	builder.params.set("order", direction.String())
	return builder
}

// Build snapshots the accumulated options.
func (builder *SearchIssuesOptionsBuilder) Build() QueryOptions {
	return builder.params.snapshot()
}

// SearchIssuesService accesses issue and pull request search.
type SearchIssuesService struct {
	client *Client
}

// List returns a single page of search results.
func (service *SearchIssuesService) List(ctx context.Context, query string, options QueryOptions) (*SearchResult[IssueItem], error) {
	var result SearchResult[IssueItem]
	if err := service.client.get(ctx, searchPath("/search/issues", query, options), &result); err != nil {
		return nil, fmt.Errorf("searching issues: %w", err)
	}
	return &result, nil
}

// Iter returns a lazy stream over every item in the result set, fetching
// result pages on demand.
func (service *SearchIssuesService) Iter(query string, options QueryOptions) *Stream[IssueItem] {
	return searchStream[IssueItem](service.client, searchPath("/search/issues", query, options))
}

// ReposSort selects the ranking of repository search results.
type ReposSort string

const (
	// ReposSortStars sorts by star count.
	ReposSortStars ReposSort = "stars"
	// ReposSortForks sorts by fork count.
	ReposSortForks ReposSort = "forks"
	// ReposSortUpdated sorts by last update.
	ReposSortUpdated ReposSort = "updated"
)

func (sort ReposSort) String() string { return string(sort) }

// SearchReposOptionsBuilder accumulates optional query parameters for
// repository search.
type SearchReposOptionsBuilder struct {
	params paramList
}

// NewSearchReposOptions returns an empty repository search options builder.
func NewSearchReposOptions() *SearchReposOptionsBuilder {
	return &SearchReposOptionsBuilder{}
}

// PerPage sets the page size (max 100, server default 30).
func (builder *SearchReposOptionsBuilder) PerPage(n int) *SearchReposOptionsBuilder {
	builder.params.set("per_page", strconv.Itoa(n))
	return builder
}

// Sort sets the result ranking.
func (builder *SearchReposOptionsBuilder) Sort(sort ReposSort) *SearchReposOptionsBuilder {
	builder.params.set("sort", sort.String())
	return builder
}

// Order sets the sort direction.
func (builder *SearchReposOptionsBuilder) Order(direction SortDirection) *SearchReposOptionsBuilder {
	builder.params.set("order", direction.String())
	return builder
}

// Build snapshots the accumulated options.
func (builder *SearchReposOptionsBuilder) Build() QueryOptions {
	return builder.params.snapshot()
}

// SearchReposService accesses repository search.
type SearchReposService struct {
	client *Client
}

// List returns a single page of search results.
func (service *SearchReposService) List(ctx context.Context, query string, options QueryOptions) (*SearchResult[Repo], error) {
	var result SearchResult[Repo]
	if err := service.client.get(ctx, searchPath("/search/repositories", query, options), &result); err != nil {
		return nil, fmt.Errorf("searching repositories: %w", err)
	}
	return &result, nil
}

// Iter returns a lazy stream over every repository in the result set.
func (service *SearchReposService) Iter(query string, options QueryOptions) *Stream[Repo] {
	return searchStream[Repo](service.client, searchPath("/search/repositories", query, options))
}
