// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

// Package labels implements the "hubline labels" command group:
// create, update, delete, and list labels on a repository.
package labels
