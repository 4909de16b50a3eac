// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the hubline binary:
// a lightweight command tree where each command declares its flags and
// Run function. Commands are assembled into a tree in cmd/hubline/main.go
// and dispatched by positional arguments.
package cli
