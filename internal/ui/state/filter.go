package state

import (
	"strings"

	"github.com/atomicstack/justlist/internal/catalog"
)

// View is the visible subsequence of a group under a filter query. Global[i]
// is the position of Items[i] in the group's full item list.
type View struct {
	Items  []catalog.Item
	Global []int
}

// Len returns the number of visible items.
func (v View) Len() int {
	return len(v.Items)
}

// Filter returns the items of g whose lowercased label contains query, in
// their original order. The query is compared as typed, so only a lowercase
// query can match every label.
func Filter(g catalog.Group, query string) View {
	if query == "" {
		view := View{
			Items:  make([]catalog.Item, len(g.Items)),
			Global: make([]int, len(g.Items)),
		}
		copy(view.Items, g.Items)
		for i := range g.Items {
			view.Global[i] = i
		}
		return view
	}
	view := View{}
	for i, item := range g.Items {
		if strings.Contains(item.Key(), query) {
			view.Items = append(view.Items, item)
			view.Global = append(view.Global, i)
		}
	}
	return view
}
