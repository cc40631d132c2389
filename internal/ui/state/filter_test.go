package state

import (
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/justlist/internal/catalog"
	"github.com/atomicstack/justlist/internal/testutil"
)

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	g := testutil.Group("g", "one", "1", "two", "2", "three", "3")
	view := Filter(g, "")
	if !reflect.DeepEqual(view.Items, g.Items) {
		t.Fatalf("expected all items, got %#v", view.Items)
	}
	if !reflect.DeepEqual(view.Global, []int{0, 1, 2}) {
		t.Fatalf("expected identity index map, got %v", view.Global)
	}
}

func TestFilterSubstringKeepsOrder(t *testing.T) {
	g := testutil.Group("g", "alpha", "1", "beta", "2", "alphabet", "3", "gamma", "4")
	view := Filter(g, "alp")
	if view.Len() != 2 || view.Items[0].Label != "alpha" || view.Items[1].Label != "alphabet" {
		t.Fatalf("unexpected filtered results %#v", view.Items)
	}
	if !reflect.DeepEqual(view.Global, []int{0, 2}) {
		t.Fatalf("expected global indices [0 2], got %v", view.Global)
	}

	view = Filter(g, "bet")
	if view.Len() != 2 || view.Items[0].Label != "beta" || view.Items[1].Label != "alphabet" {
		t.Fatalf("expected contains matches, got %#v", view.Items)
	}
	if !reflect.DeepEqual(view.Global, []int{1, 2}) {
		t.Fatalf("expected global indices [1 2], got %v", view.Global)
	}
}

func TestFilterComparesLowercasedLabelsAgainstQueryAsTyped(t *testing.T) {
	g := testutil.Group("g", "README.md", "1", "Makefile", "2")
	if view := Filter(g, "readme"); view.Len() != 1 {
		t.Fatalf("expected lowercase query to match mixed-case label, got %d", view.Len())
	}
	if view := Filter(g, "README"); view.Len() != 0 {
		t.Fatalf("expected uppercase query not to match, got %d", view.Len())
	}
}

func TestFilterNoMatches(t *testing.T) {
	g := testutil.Group("g", "one", "1")
	view := Filter(g, "zzz")
	if view.Len() != 0 || len(view.Global) != 0 {
		t.Fatalf("expected empty view, got %#v", view)
	}
}

func TestFilterDoesNotAliasGroupItems(t *testing.T) {
	g := testutil.Group("g", "one", "1")
	view := Filter(g, "")
	view.Items[0].Param = "changed"
	if g.Items[0].Param != "1" {
		t.Fatalf("expected group items untouched")
	}
}

func TestFilterMatchesExactlyContainingItems(t *testing.T) {
	g := testutil.Group("g",
		"item 1", "a", "Item 2", "b", "other", "c", "ITEM 3", "d", "it", "e", "", "f")
	queries := []string{"", "i", "item", "item ", "2", "t", "other", "x", " ", "em 3"}
	for _, q := range queries {
		view := Filter(g, q)
		var want []int
		for i, item := range g.Items {
			if strings.Contains(strings.ToLower(item.Label), q) {
				want = append(want, i)
			}
		}
		if len(want) != view.Len() {
			t.Fatalf("query %q: expected %d items, got %d", q, len(want), view.Len())
		}
		for i := range want {
			if view.Global[i] != want[i] {
				t.Fatalf("query %q: expected global %v, got %v", q, want, view.Global)
			}
			if g.Items[view.Global[i]] != view.Items[i] {
				t.Fatalf("query %q: index map points at %#v, visible item is %#v", q, g.Items[view.Global[i]], view.Items[i])
			}
		}
	}
}

func TestFilterWithoutIndexFallsBackToLowering(t *testing.T) {
	g := catalog.Group{Label: "raw", Items: []catalog.Item{{Label: "Raw Label", Param: "p"}}}
	if view := Filter(g, "raw"); view.Len() != 1 {
		t.Fatalf("expected unindexed label to match, got %d", view.Len())
	}
}
