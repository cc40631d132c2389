package generator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/justlist/internal/catalog"
	"gopkg.in/yaml.v2"

	_ "modernc.org/sqlite"
)

// DefaultBookmarksTitle labels bookmarks that have no enclosing folder.
const DefaultBookmarksTitle = "bookmarks"

// Bookmarks loads groups from a remote catalog document, a local JSON or YAML
// catalog file, or a Firefox places database. Every group it returns is
// stamped with Command and Terminal.
type Bookmarks struct {
	Source   string
	User     string
	Password string
	Command  string
	Terminal bool
	Client   *http.Client
}

func (b Bookmarks) Name() string { return "bookmarks" }

func (b Bookmarks) Augment(ctx context.Context) ([]catalog.Group, error) {
	source := strings.TrimSpace(b.Source)
	if source == "" {
		return nil, errors.New("no bookmarks source")
	}
	var (
		groups []catalog.Group
		err    error
	)
	switch {
	case isURL(source):
		groups, err = b.fetch(ctx, source)
	case isPlacesDB(source):
		groups, err = readPlaces(ctx, source)
	default:
		groups, err = readCatalogFile(source)
	}
	if err != nil {
		return nil, err
	}
	return stamp(groups, b.Command, b.Terminal), nil
}

func (b Bookmarks) fetch(ctx context.Context, url string) ([]catalog.Group, error) {
	var c catalog.Catalog
	err := get(ctx, b.Client, url, basicAuth(b.User, b.Password), func(r io.Reader) error {
		var derr error
		c, derr = catalog.Decode(r)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return c.Groups, nil
}

func isURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func isPlacesDB(source string) bool {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".sqlite", ".sqlite3", ".db":
		return true
	}
	return false
}

func readCatalogFile(path string) ([]catalog.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c catalog.Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalStrict(data, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json", "":
		c, err = catalog.DecodeBytes(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported bookmarks file %s", path)
	}
	return c.Groups, nil
}

const placesQuery = `
SELECT COALESCE(folder.id, 0), COALESCE(folder.title, ''), COALESCE(b.title, ''), p.url
FROM moz_bookmarks b
JOIN moz_places p ON p.id = b.fk
LEFT JOIN moz_bookmarks folder ON folder.id = b.parent
WHERE b.type = 1
ORDER BY folder.id, b.position`

// readPlaces reads bookmarks from a Firefox places.sqlite, one group per
// folder. The database is copied first since a running browser keeps it
// locked.
func readPlaces(ctx context.Context, path string) ([]catalog.Group, error) {
	snapshot, err := snapshotFile(path)
	if err != nil {
		return nil, err
	}
	defer os.Remove(snapshot)

	db, err := sql.Open("sqlite", snapshot)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, placesQuery)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", path, err)
	}
	defer rows.Close()

	var (
		groups []catalog.Group
		byID   = map[int64]int{}
	)
	for rows.Next() {
		var (
			folderID           int64
			folder, title, url string
		)
		if err := rows.Scan(&folderID, &folder, &title, &url); err != nil {
			return nil, fmt.Errorf("scan %s: %w", path, err)
		}
		idx, ok := byID[folderID]
		if !ok {
			label := folder
			if strings.TrimSpace(label) == "" {
				label = DefaultBookmarksTitle
			}
			groups = append(groups, catalog.Group{Label: label, Items: []catalog.Item{}})
			idx = len(groups) - 1
			byID[folderID] = idx
		}
		if strings.TrimSpace(title) == "" {
			title = url
		}
		groups[idx].Items = append(groups[idx].Items, catalog.Item{Label: title, Param: url})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return groups, nil
}

func snapshotFile(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()
	dst, err := os.CreateTemp("", "justlist-places-*.sqlite")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("copy %s: %w", path, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return dst.Name(), nil
}
