package generator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/justlist/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
}

func labels(items []catalog.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

func TestParseQueryFlags(t *testing.T) {
	assert.Equal(t, QueryFlags{Names: true}, ParseQueryFlags(""))
	assert.Equal(t, QueryFlags{Directories: true}, ParseQueryFlags("d"))
	assert.Equal(t, QueryFlags{Names: true, Directories: true, Extensions: true}, ParseQueryFlags("nde"))
	assert.Equal(t, QueryFlags{Extensions: true}, ParseQueryFlags("ex"))
}

func TestSearchNamesWithinDepth(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.txt", "b.go", "sub/c.txt", "sub/deep/d.txt")

	groups, err := Search{Root: root, Query: "txt", Flags: ParseQueryFlags(""), Command: "xdg-open"}.Augment(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, DefaultSearchTitle, g.Label)
	assert.Equal(t, "xdg-open", g.Command())
	assert.False(t, g.Terminal())
	assert.Equal(t, []string{"a.txt"}, labels(g.Items))
	assert.Equal(t, filepath.Join(root, "a.txt"), g.Items[0].Param)

	groups, err = Search{Root: root, Query: "txt", Flags: ParseQueryFlags("n"), Depth: 2}.Augment(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "c.txt"}, labels(groups[0].Items))
}

func TestSearchDirectoriesAndExtensions(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.txt", "b.go", "sub/c.txt", "gopher/x")

	groups, err := Search{Root: root, Query: "sub", Flags: ParseQueryFlags("d"), Title: "dirs", Terminal: true}.Augment(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dirs", groups[0].Label)
	assert.True(t, groups[0].Terminal())
	assert.Equal(t, []string{"sub"}, labels(groups[0].Items))

	groups, err = Search{Root: root, Query: "go", Flags: ParseQueryFlags("e")}.Augment(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"b.go"}, labels(groups[0].Items))
}

func TestSearchFuzzy(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "Alpha.TXT", "beta.md")

	groups, err := Search{Root: root, Query: "atx", Flags: ParseQueryFlags("")}.Augment(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups[0].Items)

	groups, err = Search{Root: root, Query: "atx", Flags: ParseQueryFlags(""), Fuzzy: true}.Augment(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha.TXT"}, labels(groups[0].Items))
}

func TestSearchMissingRoot(t *testing.T) {
	_, err := Search{Root: filepath.Join(t.TempDir(), "missing")}.Augment(context.Background())
	require.Error(t, err)
}

func TestSearchVerboseReportsNothingOnCleanWalk(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.txt")
	var errs bytes.Buffer
	_, err := Search{Root: root, Query: "a", Verbose: true, Errors: &errs}.Augment(context.Background())
	require.NoError(t, err)
	assert.Empty(t, errs.String())
}

func TestGitRepos(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"alpha/.git", "beta/.git", "nested/gamma/.git", "plain"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0o755))
	}
	writeTree(t, root, "alpha/.git/HEAD", "notes.git")

	groups, err := GitRepos{Root: root, Command: "code"}.Augment(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, GitReposTitle, g.Label)
	assert.Equal(t, "code", g.Command())
	assert.Equal(t, []string{"alpha", "beta"}, labels(g.Items))
	assert.Equal(t, filepath.Join(root, "alpha"), g.Items[0].Param)

	groups, err = GitRepos{Root: root, Depth: 2}.Augment(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, labels(groups[0].Items))
}

func TestGitReposRootIsRepository(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))

	groups, err := GitRepos{Root: root}.Augment(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Base(root)}, labels(groups[0].Items))
}
