// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package github

import "sync"

// responseCache stores validated GET responses for conditional requests.
// When a GET response carries an ETag header, the body is kept; later
// GETs to the same URL send If-None-Match, and a 304 Not Modified is
// answered from the cache without consuming a fresh response body.
//
// There is no eviction: the cache lives as long as the Client and is
// bounded by the number of distinct URLs queried.
type responseCache struct {
	mu      sync.RWMutex
	entries map[string]cachedResponse
}

type cachedResponse struct {
	etag string
	body []byte
}

func newResponseCache() *responseCache {
	return &responseCache{entries: make(map[string]cachedResponse)}
}

// etag returns the cached validator for a URL, or "" when none is cached.
func (cache *responseCache) etag(url string) string {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return cache.entries[url].etag
}

// cachedBody returns the cached response body for a URL, or nil.
func (cache *responseCache) cachedBody(url string) []byte {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return cache.entries[url].body
}

// save records a validator and response body for a URL.
func (cache *responseCache) save(url, etag string, body []byte) {
	if etag == "" {
		return
	}
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.entries[url] = cachedResponse{etag: etag, body: body}
}
