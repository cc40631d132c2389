package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/justlist/internal/catalog"
	"github.com/atomicstack/justlist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	logFile := filepath.Join(t.TempDir(), "justlist.log")
	cmd.SetArgs(append(args, "--log-file", logFile))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSearchAppendsToPipedCatalog(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte("x"), 0o644))

	out, _, err := execute(t, testutil.SampleJSON, "search", "md", "glow", "-w", root, "-t")
	require.NoError(t, err)

	c, err := catalog.DecodeBytes([]byte(out))
	require.NoError(t, err)
	require.Len(t, c.Groups, 3)
	g := c.Groups[2]
	assert.Equal(t, "files", g.Label)
	assert.Equal(t, "glow", g.Command())
	assert.True(t, g.Terminal())
	require.Len(t, g.Items, 1)
	assert.Equal(t, "notes.md", g.Items[0].Label)
}

func TestSearchTitleFromEnvironment(t *testing.T) {
	t.Setenv("JUSTLIST_TITLE", "docs")
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0o644))

	out, _, err := execute(t, "", "search", "a", "open", "--working-dir", root)
	require.NoError(t, err)
	c, err := catalog.DecodeBytes([]byte(out))
	require.NoError(t, err)
	require.Len(t, c.Groups, 1)
	assert.Equal(t, "docs", c.Groups[0].Label)

	out, _, err = execute(t, "", "search", "a", "open", "--working-dir", root, "--title", "flag")
	require.NoError(t, err)
	c, err = catalog.DecodeBytes([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "flag", c.Groups[0].Label)
}

func TestGitReposCommand(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "proj", ".git"), 0o755))

	out, _, err := execute(t, "", "git-repos", "code", "-w", root)
	require.NoError(t, err)
	c, err := catalog.DecodeBytes([]byte(out))
	require.NoError(t, err)
	require.Len(t, c.Groups, 1)
	assert.Equal(t, "git repos", c.Groups[0].Label)
	assert.Equal(t, filepath.Join(root, "proj"), c.Groups[0].Items[0].Param)
}

func TestPullRequestsTokenFromEnvironment(t *testing.T) {
	t.Setenv("JUSTLIST_TOKEN", "tok")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"values":[{"id":7,"title":"Add picker","state":"OPEN","links":{"self":[{"href":"https://bb/pr/7"}]}}],"isLastPage":true}`)
	}))
	defer srv.Close()

	out, _, err := execute(t, "", "pull-requests", srv.URL, "xdg-open")
	require.NoError(t, err)
	c, err := catalog.DecodeBytes([]byte(out))
	require.NoError(t, err)
	require.Len(t, c.Groups, 1)
	assert.Equal(t, "[OPEN] Add picker", c.Groups[0].Items[0].Label)
}

func TestFailingGeneratorPassesInputThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	out, errOut, err := execute(t, testutil.SampleJSON, "bookmarks", srv.URL, "firefox")
	require.NoError(t, err)
	assert.Contains(t, errOut, "bookmarks")
	assert.Contains(t, errOut, "500")

	got, err := catalog.DecodeBytes([]byte(out))
	require.NoError(t, err)
	want, err := catalog.DecodeBytes([]byte(testutil.SampleJSON))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMalformedInputFails(t *testing.T) {
	_, _, err := execute(t, "{", "git-repos", "code", "-w", t.TempDir())
	require.Error(t, err)
}

func TestShowPrintsTable(t *testing.T) {
	out, _, err := execute(t, testutil.SampleJSON, "show")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "GROUP    #  LABEL   PARAM  COMMAND  TERMINAL", lines[0])
	assert.Equal(t, "group 1  1  item 1  xxx    qqq      false", lines[1])
	assert.Equal(t, "group 2  2  item 4  www    -        false", lines[4])
}

func TestArgumentValidation(t *testing.T) {
	_, _, err := execute(t, "", "search", "only-query")
	require.Error(t, err)
}
