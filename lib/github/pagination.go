// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"strings"

	"github.com/hubline/hubline/lib/netutil"
)

// pageFunc fetches and decodes one page at url. It returns the decoded
// page value and the URL of the following page, or "" when the fetched
// page is the last one.
type pageFunc[P any] func(ctx context.Context, url string) (P, string, error)

// streamState tracks where a Stream is in its page-by-page walk. Each
// call to Next drives at most one fetch; the state makes the transitions
// explicit instead of burying them in control flow.
type streamState int

const (
	// stateFetch: the buffer is drained and a continuation exists; the
	// next pull must fetch the page at nextURL.
	stateFetch streamState = iota

	// stateBuffered: items from the current page remain in the buffer
	// and are served without I/O.
	stateBuffered

	// stateDone: the stream ended normally; no further fetch will occur.
	stateDone

	// stateFailed: a fetch failed; the error is terminal and sticky.
	stateFailed
)

// Stream is a lazy, ordered, single-pass sequence of items assembled
// from consecutive pages of a paginated endpoint. Items are yielded in
// the exact order pages are fetched and items appear within a page; no
// page is fetched more than once, and no page is fetched before every
// item of the previous page has been consumed.
//
// A Stream performs no background work: abandoning it (ceasing to call
// Next, or breaking out of All) issues no further fetch. Cancel an
// in-flight fetch through the context passed to Next.
//
// A Stream is not safe for concurrent use; it owns its own cursor.
type Stream[T any] struct {
	fetch   func(ctx context.Context, url string) ([]T, string, error)
	state   streamState
	buffer  []T
	nextURL string
	err     error
}

// unfold builds a Stream from a starting URL, a page-fetching capability,
// and a pure extraction function that pulls the items out of one decoded
// page. The page boundaries disappear: callers see only items.
func unfold[P, T any](firstURL string, fetch pageFunc[P], extract func(P) []T) *Stream[T] {
	return &Stream[T]{
		state:   stateFetch,
		nextURL: firstURL,
		fetch: func(ctx context.Context, url string) ([]T, string, error) {
			page, next, err := fetch(ctx, url)
			if err != nil {
				return nil, "", err
			}
			return extract(page), next, nil
		},
	}
}

// Next returns the next item in the stream. It reports ok=false when the
// stream is exhausted (err == nil) or has failed (err != nil).
//
// Pulling either serves a buffered item with no I/O, or — when the
// current page is drained — fetches exactly one further page and serves
// its first item. A fetch failure is terminal: the failed page is never
// refetched, no later page is fetched, and every subsequent call returns
// the same error. Items yielded before the failure remain valid.
func (stream *Stream[T]) Next(ctx context.Context) (item T, ok bool, err error) {
	var zero T
	for {
		switch stream.state {
		case stateBuffered:
			item := stream.buffer[0]
			stream.buffer = stream.buffer[1:]
			if len(stream.buffer) == 0 {
				if stream.nextURL == "" {
					stream.state = stateDone
				} else {
					stream.state = stateFetch
				}
			}
			return item, true, nil

		case stateFetch:
			items, next, err := stream.fetch(ctx, stream.nextURL)
			if err != nil {
				stream.state = stateFailed
				stream.err = err
				return zero, false, err
			}
			stream.nextURL = next
			if len(items) == 0 {
				if next == "" {
					stream.state = stateDone
					return zero, false, nil
				}
				// An empty page with a continuation: keep walking until
				// an item or the end shows up. Still one page per loop
				// iteration, still demand-driven.
				continue
			}
			stream.buffer = items
			stream.state = stateBuffered

		case stateDone:
			return zero, false, nil

		case stateFailed:
			return zero, false, stream.err
		}
	}
}

// Collect consumes the remainder of the stream and returns all items.
// On failure it returns the items yielded before the failure alongside
// the error.
func (stream *Stream[T]) Collect(ctx context.Context) ([]T, error) {
	var all []T
	for {
		item, ok, err := stream.Next(ctx)
		if err != nil {
			return all, err
		}
		if !ok {
			return all, nil
		}
		all = append(all, item)
	}
}

// All adapts the stream to a range-over-func sequence. A fetch failure
// is yielded once with a zero item, then the sequence ends. Breaking out
// of the range early abandons the stream with no further fetch.
func (stream *Stream[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			item, ok, err := stream.Next(ctx)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok {
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// pages returns the client's page-fetching capability for pages decoded
// as P: one authenticated GET per call, with the continuation parsed
// from the RFC 5988 Link header's rel="next" entry.
func pages[P any](client *Client) pageFunc[P] {
	return func(ctx context.Context, url string) (P, string, error) {
		var page P
		// No conditional-GET validator: a 304 would leave the fetcher
		// with neither items nor a Link continuation.
		response, err := client.doRaw(ctx, http.MethodGet, url, nil, "")
		if err != nil {
			return page, "", err
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			return page, "", parseAPIError(response)
		}
		if err := netutil.DecodeResponse(response.Body, &page); err != nil {
			return page, "", fmt.Errorf("github: decoding page: %w", err)
		}
		return page, parseLinkNext(response.Header.Get("Link")), nil
	}
}

// list returns a Stream over a paginated endpoint whose pages are plain
// JSON arrays of T.
func list[T any](client *Client, path string) *Stream[T] {
	return unfold(client.baseURL+path, pages[[]T](client), func(items []T) []T { return items })
}

// parseLinkNext extracts the URL with rel="next" from an RFC 5988 Link
// header. Returns empty string if no next link is present.
//
// Format: <https://api.github.com/...?page=2>; rel="next", <...>; rel="last"
func parseLinkNext(header string) string {
	if header == "" {
		return ""
	}

	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)

		// Each part is: <url>; rel="type"
		segments := strings.SplitN(part, ";", 2)
		if len(segments) != 2 {
			continue
		}

		urlPart := strings.TrimSpace(segments[0])
		relPart := strings.TrimSpace(segments[1])

		if !strings.Contains(relPart, `rel="next"`) {
			continue
		}

		if strings.HasPrefix(urlPart, "<") && strings.HasSuffix(urlPart, ">") {
			return urlPart[1 : len(urlPart)-1]
		}
	}

	return ""
}
