// Copyright 2026 The Hubline Authors
// SPDX-License-Identifier: Apache-2.0

package search

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

// defaultLimit bounds how many results a search command prints unless
// the user asks for more. Pagination continues only as far as needed.
const defaultLimit = 30

// Command returns the "search" subcommand group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "search",
		Summary: "Search issues and repositories",
		Description: `Search GitHub with the full query syntax (qualifiers like
repo:, is:, language:, user: and free text). Results stream across
pages on demand, up to --limit items.`,
		Subcommands: []*cli.Command{
			issuesCommand(),
			reposCommand(),
		},
	}
}

func issuesCommand() *cli.Command {
	var clientFlags cli.ClientFlags
	var outputJSON bool
	var sort string
	var order string
	var perPage int
	var limit int

	return &cli.Command{
		Name:    "issues",
		Summary: "Search issues and pull requests",
		Usage:   "hubline search issues <query> [flags]",
		Examples: []cli.Example{
			{
				Description: "Most-discussed open issues in a repository",
				Command:     "hubline search issues 'repo:foo/bar is:open' --sort comments --order desc",
			},
			{
				Description: "Stream the first 200 matches",
				Command:     "hubline search issues 'label:bug is:open' --limit 200",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("issues", pflag.ContinueOnError)
			clientFlags.Register(flagSet)
			flagSet.StringVar(&sort, "sort", "", "result ranking: created, updated, or comments")
			flagSet.StringVar(&order, "order", "", "sort direction: asc or desc")
			flagSet.IntVar(&perPage, "per-page", 0, "results per page (max 100)")
			flagSet.IntVar(&limit, "limit", defaultLimit, "maximum results to print")
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("search query required")
			}
			query := strings.Join(args, " ")

			builder := github.NewSearchIssuesOptions()
			if sort != "" {
				ranking, err := parseIssuesSort(sort)
				if err != nil {
					return err
				}
				builder.Sort(ranking)
			}
			if order != "" {
				direction, err := parseOrder(order)
				if err != nil {
					return err
				}
				builder.Order(direction)
			}
			if perPage > 0 {
				builder.PerPage(perPage)
			}

			logger := cli.NewCommandLogger().With("command", "search/issues")
			client, err := clientFlags.NewClient(logger)
			if err != nil {
				return err
			}

			stream := client.Search().Issues().Iter(query, builder.Build())
			items, err := take(context.Background(), stream, limit)
			if err != nil {
				return err
			}

			if outputJSON {
				return cli.WriteJSON(items)
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "NUMBER\tSTATE\tREPO\tTITLE")
			for _, item := range items {
				repo := ""
				if owner, name, err := item.RepoTuple(); err == nil {
					repo = owner + "/" + name
				}
				fmt.Fprintf(writer, "#%d\t%s\t%s\t%s\n", item.Number, item.State, repo, item.Title)
			}
			return writer.Flush()
		},
	}
}

func reposCommand() *cli.Command {
	var clientFlags cli.ClientFlags
	var outputJSON bool
	var sort string
	var order string
	var perPage int
	var limit int

	return &cli.Command{
		Name:    "repos",
		Summary: "Search repositories",
		Usage:   "hubline search repos <query> [flags]",
		Examples: []cli.Example{
			{
				Description: "Most-starred Go repositories",
				Command:     "hubline search repos 'language:go' --sort stars --order desc",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("repos", pflag.ContinueOnError)
			clientFlags.Register(flagSet)
			flagSet.StringVar(&sort, "sort", "", "result ranking: stars, forks, or updated")
			flagSet.StringVar(&order, "order", "", "sort direction: asc or desc")
			flagSet.IntVar(&perPage, "per-page", 0, "results per page (max 100)")
			flagSet.IntVar(&limit, "limit", defaultLimit, "maximum results to print")
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("search query required")
			}
			query := strings.Join(args, " ")

			builder := github.NewSearchReposOptions()
			if sort != "" {
				ranking, err := parseReposSort(sort)
				if err != nil {
					return err
				}
				builder.Sort(ranking)
			}
			if order != "" {
				direction, err := parseOrder(order)
				if err != nil {
					return err
				}
				builder.Order(direction)
			}
			if perPage > 0 {
				builder.PerPage(perPage)
			}

			logger := cli.NewCommandLogger().With("command", "search/repos")
			client, err := clientFlags.NewClient(logger)
			if err != nil {
				return err
			}

			stream := client.Search().Repos().Iter(query, builder.Build())
			repos, err := take(context.Background(), stream, limit)
			if err != nil {
				return err
			}

			if outputJSON {
				return cli.WriteJSON(repos)
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "REPO\tSTARS\tFORKS\tDESCRIPTION")
			for _, repo := range repos {
				description := ""
				if repo.Description != nil {
					description = *repo.Description
				}
				fmt.Fprintf(writer, "%s\t%d\t%d\t%s\n", repo.FullName, repo.StargazersCount, repo.ForksCount, description)
			}
			return writer.Flush()
		},
	}
}

// parseIssuesSort validates a --sort flag value for issue search, so a
// typo fails locally instead of as a server-side 422.
func parseIssuesSort(value string) (github.IssuesSort, error) {
	switch value {
	case "created":
		return github.IssuesSortCreated, nil
	case "updated":
		return github.IssuesSortUpdated, nil
	case "comments":
		return github.IssuesSortComments, nil
	default:
		return "", fmt.Errorf("invalid --sort %q: must be created, updated, or comments", value)
	}
}

// parseReposSort validates a --sort flag value for repository search.
func parseReposSort(value string) (github.ReposSort, error) {
	switch value {
	case "stars":
		return github.ReposSortStars, nil
	case "forks":
		return github.ReposSortForks, nil
	case "updated":
		return github.ReposSortUpdated, nil
	default:
		return "", fmt.Errorf("invalid --sort %q: must be stars, forks, or updated", value)
	}
}

// parseOrder maps a flag value to a sort direction.
func parseOrder(value string) (github.SortDirection, error) {
	switch value {
	case "asc":
		return github.SortAsc, nil
	case "desc":
		return github.SortDesc, nil
	default:
		return "", fmt.Errorf("invalid --order %q: must be asc or desc", value)
	}
}

// take consumes at most limit items from the stream. A limit of zero or
// less means no bound.
func take[T any](ctx context.Context, stream *github.Stream[T], limit int) ([]T, error) {
	if limit <= 0 {
		return stream.Collect(ctx)
	}
	items := make([]T, 0, limit)
	for len(items) < limit {
		item, ok, err := stream.Next(ctx)
		if err != nil {
			return items, err
		}
		if !ok {
			break
		}
		items = append(items, item)
	}
	return items, nil
}
