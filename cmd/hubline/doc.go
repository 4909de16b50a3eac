// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

// Command hubline is a command-line client for the GitHub REST API.
// It manages repository labels and searches issues and repositories,
// streaming paginated results on demand.
package main
