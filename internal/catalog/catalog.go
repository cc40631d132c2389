package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoInput is returned when a catalog is requested from an empty stream.
var ErrNoInput = errors.New("catalog: no input")

// Item is one selectable entry.
type Item struct {
	Label string `json:"label" yaml:"label"`
	Param string `json:"param" yaml:"param"`

	key string
}

// Key returns the lowercased label used for filtering. Items that did not go
// through Index fall back to lowering the label on demand.
func (i Item) Key() string {
	if i.key == "" && i.Label != "" {
		return strings.ToLower(i.Label)
	}
	return i.key
}

// Group is a named list of items sharing a launch command.
type Group struct {
	Label           string  `json:"label" yaml:"label"`
	Items           []Item  `json:"items" yaml:"items"`
	CommandTemplate *string `json:"command_template" yaml:"command_template"`
	IsTerminal      *bool   `json:"is_terminal" yaml:"is_terminal"`
}

// Command returns the command template, or "" when none is set.
func (g Group) Command() string {
	if g.CommandTemplate == nil {
		return ""
	}
	return *g.CommandTemplate
}

// Terminal reports whether the group's command runs in the current terminal.
func (g Group) Terminal() bool {
	return g.IsTerminal != nil && *g.IsTerminal
}

// Clone returns a deep copy of the group.
func (g Group) Clone() Group {
	dup := Group{Label: g.Label}
	if g.Items != nil {
		dup.Items = make([]Item, len(g.Items))
		copy(dup.Items, g.Items)
	}
	if g.CommandTemplate != nil {
		dup.CommandTemplate = String(*g.CommandTemplate)
	}
	if g.IsTerminal != nil {
		dup.IsTerminal = Bool(*g.IsTerminal)
	}
	return dup
}

// Catalog is the full document exchanged between generators and the picker.
type Catalog struct {
	Groups []Group `json:"groups" yaml:"groups"`
}

// Empty returns a catalog with no groups that still encodes as `{"groups":[]}`.
func Empty() Catalog {
	return Catalog{Groups: []Group{}}
}

// Clone deep-copies every group.
func (c Catalog) Clone() Catalog {
	dup := Catalog{Groups: make([]Group, len(c.Groups))}
	for i, g := range c.Groups {
		dup.Groups[i] = g.Clone()
	}
	return dup
}

// Append returns a new catalog holding the receiver's groups followed by the
// supplied ones. Neither input is modified.
func (c Catalog) Append(groups ...Group) Catalog {
	out := Catalog{Groups: make([]Group, 0, len(c.Groups)+len(groups))}
	for _, g := range c.Groups {
		out.Groups = append(out.Groups, g.Clone())
	}
	for _, g := range groups {
		out.Groups = append(out.Groups, g.Clone())
	}
	return out
}

// Index canonicalises every item label to its lowercase filter key. It runs
// once when a catalog is loaded.
func Index(c Catalog) Catalog {
	for gi := range c.Groups {
		items := c.Groups[gi].Items
		for ii := range items {
			items[ii].key = strings.ToLower(items[ii].Label)
		}
	}
	return c
}

// Decode reads exactly one catalog document from r.
func Decode(r io.Reader) (Catalog, error) {
	dec := json.NewDecoder(r)
	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, ErrNoInput
		}
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return Catalog{}, errors.New("decode catalog: unexpected data after document")
		}
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if c.Groups == nil {
		c.Groups = []Group{}
	}
	return c, nil
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte) (Catalog, error) {
	return Decode(bytes.NewReader(data))
}

// Encode writes the catalog as a single JSON document followed by a newline.
func Encode(w io.Writer, c Catalog) error {
	if c.Groups == nil {
		c.Groups = []Group{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}

// Load reads a catalog from path, or from stdin when path is empty, and
// indexes it for filtering.
func Load(path string, stdin io.Reader) (Catalog, error) {
	var (
		c   Catalog
		err error
	)
	if strings.TrimSpace(path) == "" {
		if stdin == nil {
			return Catalog{}, ErrNoInput
		}
		c, err = Decode(stdin)
	} else {
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return Catalog{}, fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()
		c, err = Decode(f)
	}
	if err != nil {
		return Catalog{}, err
	}
	return Index(c), nil
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
