// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package labels

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/hubline/hubline/cmd/hubline/cli"
	"github.com/hubline/hubline/lib/github"
)

// Command returns the "labels" subcommand group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "labels",
		Summary: "Manage repository labels",
		Description: `Create, update, delete, and list the labels of a repository.

Repositories are addressed as owner/repo. Mutations require a token
with write access to the repository.`,
		Subcommands: []*cli.Command{
			listCommand(),
			createCommand(),
			updateCommand(),
			deleteCommand(),
		},
	}
}

// splitRepo parses an "owner/repo" argument.
func splitRepo(arg string) (owner, repo string, err error) {
	owner, repo, found := strings.Cut(arg, "/")
	if !found || owner == "" || repo == "" {
		return "", "", fmt.Errorf("expected owner/repo, got %q", arg)
	}
	return owner, repo, nil
}

func listCommand() *cli.Command {
	var clientFlags cli.ClientFlags
	var outputJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List the labels of a repository",
		Usage:   "hubline labels list <owner>/<repo> [flags]",
		Examples: []cli.Example{
			{Description: "List labels as a table", Command: "hubline labels list octocat/hello-world"},
			{Description: "List labels as JSON", Command: "hubline labels list octocat/hello-world --json"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			clientFlags.Register(flagSet)
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected 1 argument (owner/repo), got %d", len(args))
			}
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			logger := cli.NewCommandLogger().With("command", "labels/list")
			client, err := clientFlags.NewClient(logger)
			if err != nil {
				return err
			}

			// Follow pagination so repositories with many labels list fully.
			labels, err := client.Labels(owner, repo).Iter().Collect(context.Background())
			if err != nil {
				return err
			}

			if outputJSON {
				return cli.WriteJSON(labels)
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "NAME\tCOLOR")
			for _, label := range labels {
				fmt.Fprintf(writer, "%s\t#%s\n", label.Name, label.Color)
			}
			return writer.Flush()
		},
	}
}

func createCommand() *cli.Command {
	var clientFlags cli.ClientFlags
	var outputJSON bool

	return &cli.Command{
		Name:    "create",
		Summary: "Create a label",
		Usage:   "hubline labels create <owner>/<repo> <name> <color> [flags]",
		Examples: []cli.Example{
			{Description: "Create a red bug label", Command: "hubline labels create octocat/hello-world bug ff0000"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			clientFlags.Register(flagSet)
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("expected 3 arguments (owner/repo, name, color), got %d", len(args))
			}
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			logger := cli.NewCommandLogger().With("command", "labels/create")
			client, err := clientFlags.NewClient(logger)
			if err != nil {
				return err
			}

			label, err := client.Labels(owner, repo).Create(context.Background(), github.LabelOptions{
				Name:  args[1],
				Color: strings.TrimPrefix(args[2], "#"),
			})
			if err != nil {
				return err
			}

			if outputJSON {
				return cli.WriteJSON(label)
			}
			logger.Info("label created", "name", label.Name, "color", label.Color)
			return nil
		},
	}
}

func updateCommand() *cli.Command {
	var clientFlags cli.ClientFlags
	var outputJSON bool
	var newName string
	var newColor string

	return &cli.Command{
		Name:    "update",
		Summary: "Update or rename a label",
		Usage:   "hubline labels update <owner>/<repo> <name> [flags]",
		Examples: []cli.Example{
			{Description: "Change a label's color", Command: "hubline labels update octocat/hello-world bug --color d73a4a"},
			{Description: "Rename a label", Command: "hubline labels update octocat/hello-world bug --name defect"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("update", pflag.ContinueOnError)
			clientFlags.Register(flagSet)
			flagSet.StringVar(&newName, "name", "", "new label name (defaults to the current name)")
			flagSet.StringVar(&newColor, "color", "", "new 6-character hex color")
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected 2 arguments (owner/repo, name), got %d", len(args))
			}
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}
			if newName == "" && newColor == "" {
				return fmt.Errorf("nothing to update: pass --name and/or --color")
			}

			previousName := args[1]
			options := github.LabelOptions{Name: previousName, Color: strings.TrimPrefix(newColor, "#")}
			if newName != "" {
				options.Name = newName
			}

			logger := cli.NewCommandLogger().With("command", "labels/update")
			client, err := clientFlags.NewClient(logger)
			if err != nil {
				return err
			}
			service := client.Labels(owner, repo)

			// A color-less update must carry the current color, since the
			// request body always replaces both attributes.
			if options.Color == "" {
				current, err := service.List(context.Background())
				if err != nil {
					return err
				}
				for _, label := range current {
					if label.Name == previousName {
						options.Color = label.Color
						break
					}
				}
				if options.Color == "" {
					return fmt.Errorf("label %q not found in %s/%s", previousName, owner, repo)
				}
			}

			label, err := service.Update(context.Background(), previousName, options)
			if err != nil {
				return err
			}

			if outputJSON {
				return cli.WriteJSON(label)
			}
			logger.Info("label updated", "name", label.Name, "color", label.Color)
			return nil
		},
	}
}

func deleteCommand() *cli.Command {
	var clientFlags cli.ClientFlags

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a label",
		Usage:   "hubline labels delete <owner>/<repo> <name> [flags]",
		Examples: []cli.Example{
			{Description: "Delete a label", Command: "hubline labels delete octocat/hello-world wontfix"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("delete", pflag.ContinueOnError)
			clientFlags.Register(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected 2 arguments (owner/repo, name), got %d", len(args))
			}
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			logger := cli.NewCommandLogger().With("command", "labels/delete")
			client, err := clientFlags.NewClient(logger)
			if err != nil {
				return err
			}

			if err := client.Labels(owner, repo).Delete(context.Background(), args[1]); err != nil {
				return err
			}
			logger.Info("label deleted", "name", args[1])
			return nil
		},
	}
}
