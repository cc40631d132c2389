package testutil

import (
	"testing"

	"github.com/atomicstack/justlist/internal/catalog"
)

// SampleJSON is the two-group catalog used across the picker tests.
const SampleJSON = `{
  "groups": [
    {
      "label": "group 1",
      "items": [
        {"label": "item 1", "param": "xxx"},
        {"label": "item 2", "param": "yyy"}
      ],
      "command_template": "qqq",
      "is_terminal": null
    },
    {
      "label": "group 2",
      "items": [
        {"label": "item 3", "param": "qqq"},
        {"label": "item 4", "param": "www"}
      ],
      "command_template": null,
      "is_terminal": null
    }
  ]
}`

// SampleCatalog decodes and indexes SampleJSON.
func SampleCatalog(t testing.TB) catalog.Catalog {
	t.Helper()
	c, err := catalog.DecodeBytes([]byte(SampleJSON))
	if err != nil {
		t.Fatalf("decode sample catalog: %v", err)
	}
	return catalog.Index(c)
}

// Group builds an indexed group from alternating label/param pairs.
func Group(label string, pairs ...string) catalog.Group {
	g := catalog.Group{Label: label, Items: make([]catalog.Item, 0, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		g.Items = append(g.Items, catalog.Item{Label: pairs[i], Param: pairs[i+1]})
	}
	c := catalog.Index(catalog.Catalog{Groups: []catalog.Group{g}})
	return c.Groups[0]
}
