// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

// Package github provides a typed Go client for the GitHub REST API.
//
// Resources are exposed as scope-bound accessor services (Labels, Search)
// created from a shared Client. Paginated endpoints return a lazy Stream
// that fetches pages strictly on demand, one at a time, and hides page
// boundaries from the caller. Filterable endpoints take an immutable
// QueryOptions value produced by a per-endpoint fluent builder.
//
// All requests are made over HTTPS. The client refuses non-HTTPS base URLs.
//
// The client performs no retries and no rate-limit backoff: every failure
// is surfaced to the caller at the point it occurs, as a structured
// *APIError for non-2xx responses.
package github
