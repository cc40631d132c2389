package main

import (
	"github.com/atomicstack/justlist/internal/generator"
	"github.com/spf13/cobra"
)

func newSearchCmd(cfg *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search QUERY COMMAND",
		Short: "Append files whose name matches QUERY.",
		Long: `search walks the working directory and lists entries matching QUERY.

The -q flag picks what QUERY is matched against: n for file names, d for
directory names and e for file extensions. Letters combine; the default is n.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStage(cmd, cfg, generator.Search{
				Root:     cfg.String("working-dir"),
				Query:    args[0],
				Flags:    generator.ParseQueryFlags(cfg.String("query-flags")),
				Depth:    cfg.Int("depth"),
				Fuzzy:    cfg.Bool("fuzzy"),
				Title:    cfg.String("title"),
				Command:  args[1],
				Terminal: cfg.Bool("terminal"),
				Verbose:  cfg.Bool("verbose"),
				Errors:   cmd.ErrOrStderr(),
			})
		},
	}
	f := cmd.Flags()
	f.StringP("query-flags", "q", "", "match against names (n), directories (d) and/or extensions (e)")
	f.IntP("depth", "d", 1, "maximum directory depth")
	f.StringP("working-dir", "w", "", "directory to search (default: current directory)")
	f.String("title", generator.DefaultSearchTitle, "group label")
	f.Bool("fuzzy", false, "match QUERY fuzzily and case-insensitively")
	f.BoolP("terminal", "t", false, "COMMAND runs in the current terminal")
	return cmd
}

func newGitReposCmd(cfg *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "git-repos COMMAND",
		Aliases: []string{"git-repo"},
		Short:   "Append git repositories found below the working directory.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStage(cmd, cfg, generator.GitRepos{
				Root:     cfg.String("working-dir"),
				Depth:    cfg.Int("depth"),
				Command:  args[0],
				Terminal: cfg.Bool("terminal"),
				Verbose:  cfg.Bool("verbose"),
				Errors:   cmd.ErrOrStderr(),
			})
		},
	}
	f := cmd.Flags()
	f.IntP("depth", "d", 1, "maximum depth of a repository below the working directory")
	f.StringP("working-dir", "w", "", "directory to scan (default: current directory)")
	f.BoolP("terminal", "t", false, "COMMAND runs in the current terminal")
	return cmd
}

func newBookmarksCmd(cfg *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmarks SOURCE COMMAND",
		Short: "Append bookmarks from a URL, a catalog file or a Firefox places.sqlite.",
		Long: `bookmarks reads groups from SOURCE and stamps them with COMMAND.

SOURCE may be an http(s) URL serving a catalog document, a local .json, .yaml
or .yml catalog file, or a Firefox places.sqlite database.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStage(cmd, cfg, generator.Bookmarks{
				Source:   args[0],
				User:     cfg.String("user"),
				Password: cfg.String("password"),
				Command:  args[1],
				Terminal: cfg.Bool("terminal"),
			})
		},
	}
	f := cmd.Flags()
	f.StringP("user", "u", "", "basic auth user for URL sources")
	f.StringP("password", "p", "", "basic auth password for URL sources (or JUSTLIST_PASSWORD)")
	f.BoolP("terminal", "t", false, "COMMAND runs in the current terminal")
	return cmd
}

func newPullRequestsCmd(cfg *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pull-requests URL COMMAND",
		Aliases: []string{"prs", "bb-prs"},
		Short:   "Append pull requests from a Bitbucket Server REST endpoint.",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStage(cmd, cfg, generator.PullRequests{
				URL:          args[0],
				Token:        cfg.String("token"),
				Title:        cfg.String("title"),
				Command:      args[1],
				Terminal:     cfg.Bool("terminal"),
				MaxPages:     cfg.Int("max-pages"),
				PageInterval: cfg.Duration("page-interval"),
			})
		},
	}
	f := cmd.Flags()
	f.String("token", "", "bearer token (or JUSTLIST_TOKEN)")
	f.String("title", generator.DefaultPullRequestsTitle, "group label")
	f.Int("max-pages", generator.DefaultMaxPages, "maximum number of result pages to follow")
	f.Duration("page-interval", 0, "minimum delay between page requests")
	f.BoolP("terminal", "t", false, "COMMAND runs in the current terminal")
	return cmd
}
