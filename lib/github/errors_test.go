// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"fmt"
	"testing"
)

func TestAPIErrorFormatting(t *testing.T) {
	plain := &APIError{StatusCode: 404, Message: "Not Found"}
	if got := plain.Error(); got != "github: HTTP 404: Not Found" {
		t.Errorf("Error() = %q", got)
	}

	validation := &APIError{
		StatusCode: 422,
		Message:    "Validation Failed",
		Errors: []ValidationError{
			{Resource: "Label", Field: "color", Code: "invalid"},
			{Resource: "Label", Field: "name", Message: "name is too long"},
		},
	}
	want := "github: HTTP 422: Validation Failed; Label.color: invalid; Label.name: name is too long"
	if got := validation.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorPredicatesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("deleting label: %w", &APIError{StatusCode: 404, Message: "Not Found"})
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should see through wrapping")
	}
	if IsConflict(wrapped) || IsValidationFailed(wrapped) {
		t.Error("wrong predicate matched")
	}

	conflict := fmt.Errorf("creating label: %w", &APIError{StatusCode: 409, Message: "Conflict"})
	if !IsConflict(conflict) {
		t.Error("IsConflict should see through wrapping")
	}
}

func TestErrorPredicatesRejectOtherErrors(t *testing.T) {
	err := fmt.Errorf("network unreachable")
	if IsNotFound(err) || IsValidationFailed(err) || IsConflict(err) {
		t.Error("predicates matched a non-API error")
	}
}
