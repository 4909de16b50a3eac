// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/hubline/hubline/cmd/hubline/cli"
	"github.com/hubline/hubline/cmd/hubline/labels"
	"github.com/hubline/hubline/cmd/hubline/search"
	"github.com/hubline/hubline/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return root().Execute(os.Args[1:])
}

// root builds the complete hubline command tree.
func root() *cli.Command {
	return &cli.Command{
		Name: "hubline",
		Description: `Hubline: GitHub from the command line.

Manage repository labels and search issues and repositories. Results
from paginated endpoints stream across pages on demand.`,
		Subcommands: []*cli.Command{
			labels.Command(),
			search.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("hubline %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
