// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"net/url"
	"slices"
	"strings"
)

// QueryOptions is an immutable set of optional query parameters for one
// endpoint call, produced by a per-endpoint builder's Build method. Keys
// are unique; values are already validated by the builder's setters.
type QueryOptions struct {
	params []queryParam
}

type queryParam struct {
	key   string
	value string
}

// Serialize returns the URL-encoded "key=value&key=value" form of the
// options, in the order the options were first set. Setting a key twice
// keeps its original position with the last value. Returns "" when no
// option was set — callers must then append no "?" at all.
//
// Insertion order is a deliberate choice: it makes serialized query
// strings reproducible and pinnable in tests.
func (options QueryOptions) Serialize() string {
	if len(options.params) == 0 {
		return ""
	}
	var builder strings.Builder
	for i, param := range options.params {
		if i > 0 {
			builder.WriteByte('&')
		}
		builder.WriteString(escape(param.key))
		builder.WriteByte('=')
		builder.WriteString(escape(param.value))
	}
	return builder.String()
}

// escape percent-encodes a query component. Unlike url.QueryEscape it
// encodes spaces as "%20" rather than "+", so the result is safe both
// as a query value and when the URL is echoed verbatim (Link headers,
// logs, test fixtures). A literal "+" in the input becomes "%2B" before
// the replacement, so the rewrite cannot corrupt data.
func escape(component string) string {
	return strings.ReplaceAll(url.QueryEscape(component), "+", "%20")
}

// paramList is the mutable accumulator behind the option builders. It
// must not escape the builder: Build snapshots it into a QueryOptions.
type paramList struct {
	params []queryParam
}

// set records a parameter. Setting an existing key overwrites the value
// in place, keeping the key's original position.
func (list *paramList) set(key, value string) {
	for i := range list.params {
		if list.params[i].key == key {
			list.params[i].value = value
			return
		}
	}
	list.params = append(list.params, queryParam{key: key, value: value})
}

// snapshot freezes the accumulated parameters into a QueryOptions that
// is independent of any further builder mutation.
func (list *paramList) snapshot() QueryOptions {
	return QueryOptions{params: slices.Clone(list.params)}
}

// SortDirection orders results ascending or descending. Used by the
// search option builders.
type SortDirection string

const (
	// SortAsc sorts ascending.
	SortAsc SortDirection = "asc"
	// SortDesc sorts descending.
	SortDesc SortDirection = "desc"
)

func (direction SortDirection) String() string { return string(direction) }
