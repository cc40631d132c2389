package generator

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/atomicstack/justlist/internal/catalog"
)

// GitReposTitle labels the group produced by GitRepos.
const GitReposTitle = "git repos"

// GitRepos lists git repositories found below Root. A repository counts when
// its root sits at most Depth levels below Root.
type GitRepos struct {
	Root     string
	Depth    int
	Command  string
	Terminal bool
	Verbose  bool
	Errors   io.Writer
}

func (g GitRepos) Name() string { return "git-repos" }

func (g GitRepos) Augment(ctx context.Context) ([]catalog.Group, error) {
	root, err := rootOrWorkingDir(g.Root)
	if err != nil {
		return nil, err
	}
	depth := g.Depth
	if depth <= 0 {
		depth = 1
	}
	group := catalog.Group{Label: GitReposTitle, Items: []catalog.Item{}}
	// the .git directory sits one level below the repository root
	err = walk(ctx, root, depth+1, func(path string, d fs.DirEntry, _ int) error {
		if !d.IsDir() || d.Name() != ".git" {
			return nil
		}
		repo := filepath.Dir(path)
		group.Items = append(group.Items, catalog.Item{Label: filepath.Base(repo), Param: repo})
		return fs.SkipDir
	}, func(err error) {
		if g.Verbose && g.Errors != nil {
			fmt.Fprintln(g.Errors, err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return stamp([]catalog.Group{group}, g.Command, g.Terminal), nil
}
