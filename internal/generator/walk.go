package generator

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
)

// walkFunc receives every entry up to the configured depth. depth is 0 for the
// root itself.
type walkFunc func(path string, d fs.DirEntry, depth int) error

// walk visits root and its entries down to maxDepth levels below it. Entry errors
// are handed to onErr and skipped; the walk stops on context cancellation.
func walk(ctx context.Context, root string, maxDepth int, fn walkFunc, onErr func(error)) error {
	root = filepath.Clean(root)
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		depth := entryDepth(root, path)
		if depth > maxDepth {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		return fn(path, d, depth)
	})
}

func entryDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
