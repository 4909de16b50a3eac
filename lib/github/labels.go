// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"
	"net/url"
)

// LabelOptions contains the desired attributes of a label, serialized as
// the request body for both create and update.
type LabelOptions struct {
	Name  string `json:"name"`
	Color string `json:"color"` // 6-character hex code, no leading "#"
}

// LabelsService accesses the labels of one repository. It is an immutable
// handle bound to its owner/repo scope; create as many as needed.
type LabelsService struct {
	client *Client
	owner  string
	repo   string
}

// Labels returns the label accessor for a repository.
func (client *Client) Labels(owner, repo string) *LabelsService {
	return &LabelsService{client: client, owner: owner, repo: repo}
}

func (service *LabelsService) path(more string) string {
	return fmt.Sprintf("/repos/%s/%s/labels%s", service.owner, service.repo, more)
}

// Create creates a new label in the repository.
func (service *LabelsService) Create(ctx context.Context, options LabelOptions) (*Label, error) {
	var label Label
	if err := service.client.post(ctx, service.path(""), options, &label); err != nil {
		return nil, fmt.Errorf("creating label %q in %s/%s: %w", options.Name, service.owner, service.repo, err)
	}
	return &label, nil
}

// Update updates the label currently named previousName. The path
// addresses the old name; options carries the new attributes — renaming
// is just an options.Name that differs from previousName.
func (service *LabelsService) Update(ctx context.Context, previousName string, options LabelOptions) (*Label, error) {
	var label Label
	if err := service.client.patch(ctx, service.path("/"+url.PathEscape(previousName)), options, &label); err != nil {
		return nil, fmt.Errorf("updating label %q in %s/%s: %w", previousName, service.owner, service.repo, err)
	}
	return &label, nil
}

// Delete removes a label from the repository.
func (service *LabelsService) Delete(ctx context.Context, name string) error {
	if err := service.client.delete(ctx, service.path("/"+url.PathEscape(name))); err != nil {
		return fmt.Errorf("deleting label %q in %s/%s: %w", name, service.owner, service.repo, err)
	}
	return nil
}

// List returns the repository's labels in a single request.
func (service *LabelsService) List(ctx context.Context) ([]Label, error) {
	var labels []Label
	if err := service.client.get(ctx, service.path(""), &labels); err != nil {
		return nil, fmt.Errorf("listing labels in %s/%s: %w", service.owner, service.repo, err)
	}
	return labels, nil
}

// Iter returns a lazy stream over the repository's labels, for
// repositories with more labels than fit one page.
func (service *LabelsService) Iter() *Stream[Label] {
	return list[Label](service.client, service.path(""))
}
