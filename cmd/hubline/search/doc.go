// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

// Package search implements the "hubline search" command group:
// issue and repository search with ranked, paginated results.
package search
