// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package region maps a PCD region selector to the EKS cluster that serves it.
package region

import (
	"fmt"

	herrors "hostcheck/cli/internal/errors"
)

// Default is offered when the operator presses Enter at the region prompt.
const Default = "us-west-2"

// Cluster holds the parameters needed to refresh kubeconfig for a region.
type Cluster struct {
	Region string
	Name   string
}

var clusters = map[string]Cluster{
	"us-west-2":    {Region: "us-west-2", Name: "app-dataplane-1"},
	"eu-central-1": {Region: "eu-central-1", Name: "app-dataplane-1"},
}

// Supported lists the accepted selectors in prompt order.
func Supported() []string {
	return []string{"us-west-2", "eu-central-1"}
}

// Resolve returns the cluster for selector. Any selector outside Supported,
// including the empty string, is rejected.
func Resolve(selector string) (Cluster, error) {
	c, ok := clusters[selector]
	if !ok {
		return Cluster{}, herrors.New(herrors.UnsupportedRegion, fmt.Sprintf("invalid region %q", selector))
	}
	return c, nil
}
