// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLabelsCreate(t *testing.T) {
	recorder := &recordingHandler{handler: func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusCreated)
		writer.Write([]byte(`{"url": "https://api.github.com/repos/octocat/hello-world/labels/bug", "name": "bug", "color": "ff0000"}`))
	}}
	server := httptest.NewTLSServer(recorder)
	defer server.Close()

	client := newTestClient(t, server)
	label, err := client.Labels("octocat", "hello-world").Create(context.Background(), LabelOptions{
		Name:  "bug",
		Color: "ff0000",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	request := recorder.last(t)
	if request.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", request.Method)
	}
	if request.Path != "/repos/octocat/hello-world/labels" {
		t.Errorf("path = %q", request.Path)
	}

	var sent LabelOptions
	if err := json.Unmarshal(request.Body, &sent); err != nil {
		t.Fatalf("decoding request body: %v", err)
	}
	if sent.Name != "bug" || sent.Color != "ff0000" {
		t.Errorf("request body = %+v", sent)
	}
	if label.Name != "bug" || label.Color != "ff0000" {
		t.Errorf("label = %+v", label)
	}
}

// Update addresses the label by its previous name in the path; the new
// attributes (including any rename) travel in the body.
func TestLabelsUpdateAddressesPreviousName(t *testing.T) {
	recorder := &recordingHandler{handler: func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"name": "new-name", "color": "ff0000"}`))
	}}
	server := httptest.NewTLSServer(recorder)
	defer server.Close()

	client := newTestClient(t, server)
	label, err := client.Labels("octocat", "hello-world").Update(context.Background(), "old-name", LabelOptions{
		Name:  "new-name",
		Color: "ff0000",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	request := recorder.last(t)
	if request.Method != http.MethodPatch {
		t.Errorf("method = %s, want PATCH", request.Method)
	}
	if request.Path != "/repos/octocat/hello-world/labels/old-name" {
		t.Errorf("path = %q, want previous name in path", request.Path)
	}

	var sent LabelOptions
	if err := json.Unmarshal(request.Body, &sent); err != nil {
		t.Fatalf("decoding request body: %v", err)
	}
	if sent.Name != "new-name" {
		t.Errorf("body name = %q, want new name in body", sent.Name)
	}
	if label.Name != "new-name" {
		t.Errorf("label = %+v", label)
	}
}

func TestLabelsDelete(t *testing.T) {
	recorder := &recordingHandler{handler: func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	}}
	server := httptest.NewTLSServer(recorder)
	defer server.Close()

	client := newTestClient(t, server)
	if err := client.Labels("octocat", "hello-world").Delete(context.Background(), "wontfix"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	request := recorder.last(t)
	if request.Method != http.MethodDelete {
		t.Errorf("method = %s, want DELETE", request.Method)
	}
	if request.Path != "/repos/octocat/hello-world/labels/wontfix" {
		t.Errorf("path = %q", request.Path)
	}
}

func TestLabelsDeleteEscapesName(t *testing.T) {
	recorder := &recordingHandler{handler: func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	}}
	server := httptest.NewTLSServer(recorder)
	defer server.Close()

	client := newTestClient(t, server)
	if err := client.Labels("octocat", "hello-world").Delete(context.Background(), "help wanted"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// The server decodes the escaped segment back to the raw name.
	if got := recorder.last(t).Path; got != "/repos/octocat/hello-world/labels/help wanted" {
		t.Errorf("decoded path = %q", got)
	}
}

func TestLabelsList(t *testing.T) {
	recorder := &recordingHandler{handler: func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`[
			{"name": "bug", "color": "ff0000"},
			{"name": "docs", "color": "0075ca"}
		]`))
	}}
	server := httptest.NewTLSServer(recorder)
	defer server.Close()

	client := newTestClient(t, server)
	labels, err := client.Labels("octocat", "hello-world").List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(labels) != 2 || labels[0].Name != "bug" || labels[1].Name != "docs" {
		t.Errorf("labels = %+v", labels)
	}
	if got := recorder.last(t).Path; got != "/repos/octocat/hello-world/labels" {
		t.Errorf("path = %q", got)
	}
}

func TestLabelsIterFollowsLinkHeader(t *testing.T) {
	var server *httptest.Server
	recorder := &recordingHandler{handler: func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.RawQuery == "page=2" {
			writer.Write([]byte(`[{"name": "c"}]`))
			return
		}
		writer.Header().Set("Link", `<`+server.URL+`/repos/octocat/hello-world/labels?page=2>; rel="next"`)
		writer.Write([]byte(`[{"name": "a"}, {"name": "b"}]`))
	}}
	server = httptest.NewTLSServer(recorder)
	defer server.Close()

	client := newTestClient(t, server)
	labels, err := client.Labels("octocat", "hello-world").Iter().Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if len(labels) != 3 || labels[0].Name != "a" || labels[2].Name != "c" {
		t.Errorf("labels = %+v", labels)
	}
	if recorder.count() != 2 {
		t.Errorf("server saw %d requests, want 2", recorder.count())
	}
}

// Serialized options come first in the query string, the encoded free-text
// query last under "q". Spaces encode as %20, never "+".
func TestSearchIssuesQueryString(t *testing.T) {
	recorder := &recordingHandler{handler: func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"total_count": 0, "incomplete_results": false, "items": []}`))
	}}
	server := httptest.NewTLSServer(recorder)
	defer server.Close()

	client := newTestClient(t, server)
	options := NewSearchIssuesOptions().
		Sort(IssuesSortComments).
		Order(SortDesc).
		PerPage(50).
		Build()
	if _, err := client.Search().Issues().List(context.Background(), "repo:foo/bar is:open", options); err != nil {
		t.Fatalf("List: %v", err)
	}

	request := recorder.last(t)
	if request.Path != "/search/issues" {
		t.Errorf("path = %q", request.Path)
	}
	want := "sort=comments&order=desc&per_page=50&q=repo%3Afoo%2Fbar%20is%3Aopen"
	if request.RawQuery != want {
		t.Errorf("query = %q, want %q", request.RawQuery, want)
	}
}

func TestSearchIssuesNoOptions(t *testing.T) {
	recorder := &recordingHandler{handler: func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"total_count": 0, "incomplete_results": false, "items": []}`))
	}}
	server := httptest.NewTLSServer(recorder)
	defer server.Close()

	client := newTestClient(t, server)
	if _, err := client.Search().Issues().List(context.Background(), "is:open", NewSearchIssuesOptions().Build()); err != nil {
		t.Fatalf("List: %v", err)
	}

	if got := recorder.last(t).RawQuery; got != "q=is%3Aopen" {
		t.Errorf("query = %q, want %q", got, "q=is%3Aopen")
	}
}

func TestSearchIssuesList(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{
			"total_count": 280,
			"incomplete_results": true,
			"items": [{
				"number": 42,
				"title": "stream hangs on empty page",
				"state": "open",
				"repository_url": "https://api.github.com/repos/foo/bar",
				"user": {"login": "octocat"},
				"pull_request": {"url": "https://api.github.com/repos/foo/bar/pulls/42"}
			}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	result, err := client.Search().Issues().List(context.Background(), "is:open", NewSearchIssuesOptions().Build())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if result.TotalCount != 280 {
		t.Errorf("TotalCount = %d", result.TotalCount)
	}
	if !result.IncompleteResults {
		t.Error("IncompleteResults = false")
	}
	if len(result.Items) != 1 {
		t.Fatalf("Items = %+v", result.Items)
	}
	item := result.Items[0]
	if item.Number != 42 || item.Title != "stream hangs on empty page" {
		t.Errorf("item = %+v", item)
	}
	if item.PullRequest == nil {
		t.Error("PullRequest = nil, want pull request marker")
	}
}

func TestSearchReposList(t *testing.T) {
	recorder := &recordingHandler{handler: func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{
			"total_count": 1,
			"incomplete_results": false,
			"items": [{"full_name": "foo/bar", "stargazers_count": 12, "default_branch": "main"}]
		}`))
	}}
	server := httptest.NewTLSServer(recorder)
	defer server.Close()

	client := newTestClient(t, server)
	options := NewSearchReposOptions().Sort(ReposSortStars).Order(SortDesc).Build()
	result, err := client.Search().Repos().List(context.Background(), "language:go", options)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	request := recorder.last(t)
	if request.Path != "/search/repositories" {
		t.Errorf("path = %q", request.Path)
	}
	if want := "sort=stars&order=desc&q=language%3Ago"; request.RawQuery != want {
		t.Errorf("query = %q, want %q", request.RawQuery, want)
	}
	if len(result.Items) != 1 || result.Items[0].FullName != "foo/bar" {
		t.Errorf("result = %+v", result)
	}
}
