// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hubline/hubline/lib/clock"
	"github.com/hubline/hubline/lib/netutil"
)

// githubAPIVersion is the GitHub REST API version header. Pinning the
// version ensures consistent behavior as GitHub evolves the API.
const githubAPIVersion = "2022-11-28"

// defaultBaseURL is the base URL for the public GitHub API.
const defaultBaseURL = "https://api.github.com"

// Config holds configuration for creating a GitHub API Client.
type Config struct {
	// BaseURL is the root URL for API requests. Defaults to
	// "https://api.github.com". Must use HTTPS.
	BaseURL string

	// Token is a personal access token or fine-grained token, sent as a
	// bearer Authorization header on every request. Optional: without a
	// token, requests are unauthenticated and limited to public data.
	Token string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Clock provides time operations. Defaults to clock.Real().
	// Inject clock.Fake() in tests for deterministic behavior.
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed GitHub REST API client. It owns the transport
// configuration shared by all accessor services; the services themselves
// hold only a scope (owner/repo, or nothing) and a reference back to the
// Client, so they are cheap to create and safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	respCache  *responseCache
	clock      clock.Clock
	logger     *slog.Logger
}

// NewClient creates a GitHub API client from the given configuration.
// Returns an error if the base URL is not HTTPS.
func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("github: API client requires HTTPS (got %q)", baseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		token:      config.Token,
		httpClient: httpClient,
		respCache:  newResponseCache(),
		clock:      clk,
		logger:     logger,
	}, nil
}

// do executes one GitHub API request — exactly one round trip, no retry.
// The path is relative to the base URL (e.g., "/repos/owner/repo/labels").
//
// For GET requests, conditional request caching is applied. For non-GET
// requests, the body is JSON-encoded from the provided value (pass nil
// for no body).
//
// Returns the response body as raw bytes. On non-2xx responses, returns
// an *APIError.
func (client *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	url := client.baseURL + path

	// Conditional GET: send the cached validator when one exists. Only
	// this single-value path opts in — a 304 is useless to callers that
	// cannot serve the cached body themselves, like the page fetcher.
	etag := ""
	if method == http.MethodGet {
		etag = client.respCache.etag(url)
	}

	response, err := client.doRaw(ctx, method, url, requestBody, etag)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	// 304 Not Modified: the conditional GET matched, serve the cached body.
	if response.StatusCode == http.StatusNotModified {
		if cached := client.respCache.cachedBody(url); cached != nil {
			return cached, nil
		}
		// Cache miss on 304 should not happen; fall through and read the
		// (empty) response body rather than failing silently.
	}

	body, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("github: reading response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, parseAPIErrorFromBody(response.StatusCode, body)
	}

	if method == http.MethodGet {
		if etag := response.Header.Get("ETag"); etag != "" {
			client.respCache.save(url, etag, body)
		}
	}

	return body, nil
}

// doRaw executes an HTTP request without response parsing and returns
// the raw *http.Response. The caller is responsible for closing the
// response body.
//
// This is used by both do() (for single-value requests) and the page
// fetcher (which needs access to the Link header before parsing the body).
// A non-empty etag is sent as an If-None-Match validator; callers that
// cannot handle a 304 pass "".
func (client *Client) doRaw(ctx context.Context, method, url string, requestBody any, etag string) (*http.Response, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("github: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("github: creating request: %w", err)
	}

	if client.token != "" {
		request.Header.Set("Authorization", "Bearer "+client.token)
	}
	request.Header.Set("Accept", "application/vnd.github+json")
	request.Header.Set("X-GitHub-Api-Version", githubAPIVersion)
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	if etag != "" {
		request.Header.Set("If-None-Match", etag)
	}

	started := client.clock.Now()
	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("github: %s %s: %w", method, url, err)
	}

	client.logger.Debug("github request",
		"method", method,
		"url", url,
		"status", response.StatusCode,
		"duration", client.clock.Now().Sub(started),
	)

	return response, nil
}

// get is a convenience method for GET requests that return a single JSON
// value. Decodes the response into result.
func (client *Client) get(ctx context.Context, path string, result any) error {
	body, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("github: decoding response: %w", err)
	}
	return nil
}

// post is a convenience method for POST requests that return a JSON
// value. Decodes the response into result when result is non-nil.
func (client *Client) post(ctx context.Context, path string, requestBody any, result any) error {
	body, err := client.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("github: decoding response: %w", err)
		}
	}
	return nil
}

// patch is a convenience method for PATCH requests that return a JSON
// value. Decodes the response into result when result is non-nil.
func (client *Client) patch(ctx context.Context, path string, requestBody any, result any) error {
	body, err := client.do(ctx, http.MethodPatch, path, requestBody)
	if err != nil {
		return err
	}
	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("github: decoding response: %w", err)
		}
	}
	return nil
}

// delete is a convenience method for DELETE requests. The response body,
// if any, is discarded.
func (client *Client) delete(ctx context.Context, path string) error {
	_, err := client.do(ctx, http.MethodDelete, path, nil)
	return err
}

// parseAPIError reads a GitHub API error from an HTTP response. Read
// failures on the error body are ignored; a partial body still makes a
// better message than none.
func parseAPIError(response *http.Response) *APIError {
	return parseAPIErrorFromBody(response.StatusCode, []byte(netutil.ErrorBody(response.Body)))
}

// parseAPIErrorFromBody parses a GitHub API error from a status code
// and response body.
func parseAPIErrorFromBody(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Message          string            `json:"message"`
		DocumentationURL string            `json:"documentation_url"`
		Errors           []ValidationError `json:"errors"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Message != "" {
		apiError.Message = wireError.Message
		apiError.DocumentationURL = wireError.DocumentationURL
		apiError.Errors = wireError.Errors
	} else {
		apiError.Message = string(body)
	}

	return apiError
}
