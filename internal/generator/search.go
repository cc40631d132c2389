package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/justlist/internal/catalog"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultSearchTitle labels the group produced by Search.
const DefaultSearchTitle = "files"

// QueryFlags selects what a search query is matched against.
type QueryFlags struct {
	Names       bool
	Directories bool
	Extensions  bool
}

// ParseQueryFlags reads a flag string made of 'n' (file names), 'd'
// (directory names) and 'e' (extensions). An empty string means names.
// Unknown letters are ignored.
func ParseQueryFlags(s string) QueryFlags {
	flags := QueryFlags{Names: s == ""}
	for _, r := range s {
		switch r {
		case 'n':
			flags.Names = true
		case 'd':
			flags.Directories = true
		case 'e':
			flags.Extensions = true
		}
	}
	return flags
}

// Search lists filesystem entries below Root whose name matches Query.
type Search struct {
	Root     string
	Query    string
	Flags    QueryFlags
	Depth    int
	Fuzzy    bool
	Title    string
	Command  string
	Terminal bool
	Verbose  bool
	// Errors receives walk errors when Verbose is set.
	Errors io.Writer
}

func (s Search) Name() string { return "search" }

func (s Search) Augment(ctx context.Context) ([]catalog.Group, error) {
	root, err := rootOrWorkingDir(s.Root)
	if err != nil {
		return nil, err
	}
	depth := s.Depth
	if depth <= 0 {
		depth = 1
	}
	title := s.Title
	if strings.TrimSpace(title) == "" {
		title = DefaultSearchTitle
	}
	group := catalog.Group{Label: title, Items: []catalog.Item{}}
	err = walk(ctx, root, depth, func(path string, d fs.DirEntry, level int) error {
		if level > 0 && s.matches(d) {
			group.Items = append(group.Items, catalog.Item{Label: d.Name(), Param: path})
		}
		return nil
	}, s.reportWalkError)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return stamp([]catalog.Group{group}, s.Command, s.Terminal), nil
}

func (s Search) matches(d fs.DirEntry) bool {
	name := d.Name()
	if d.IsDir() {
		return s.Flags.Directories && s.match(name)
	}
	if s.Flags.Names && s.match(name) {
		return true
	}
	if s.Flags.Extensions {
		if ext := strings.TrimPrefix(filepath.Ext(name), "."); ext != "" && s.match(ext) {
			return true
		}
	}
	return false
}

func (s Search) match(text string) bool {
	if s.Fuzzy {
		return fuzzy.MatchFold(s.Query, text)
	}
	return strings.Contains(text, s.Query)
}

func (s Search) reportWalkError(err error) {
	if s.Verbose && s.Errors != nil {
		fmt.Fprintln(s.Errors, err)
	}
}

func rootOrWorkingDir(root string) (string, error) {
	if strings.TrimSpace(root) != "" {
		info, err := os.Stat(root)
		if err != nil {
			return "", err
		}
		if !info.IsDir() {
			return "", fmt.Errorf("%s: %w", root, errNotDir)
		}
		return root, nil
	}
	return os.Getwd()
}

var errNotDir = errors.New("not a directory")
