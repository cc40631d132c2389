package state

import (
	"errors"

	"github.com/atomicstack/justlist/internal/catalog"
)

// ErrNothingVisible is returned by Resolve when the active group has no item
// matching the current filter.
var ErrNothingVisible = errors.New("nothing visible to select")

// Selection tracks the active group, one cursor per group and the shared
// filter query. Cursors index into the group's visible items, so every filter
// change bumps a generation counter and each group's cursor is reset to 0 the
// first time it is evaluated against the new query.
type Selection struct {
	groups  []catalog.Group
	active  int
	cursors []int
	offsets []int
	seen    []int
	filter  []rune
	gen     int
}

// NewSelection builds selection state for the supplied groups. The groups are
// read but never modified.
func NewSelection(groups []catalog.Group) *Selection {
	return &Selection{
		groups:  groups,
		cursors: make([]int, len(groups)),
		offsets: make([]int, len(groups)),
		seen:    make([]int, len(groups)),
	}
}

// Groups returns the groups the selection was built from.
func (s *Selection) Groups() []catalog.Group {
	return s.groups
}

// ActiveIndex returns the index of the active group.
func (s *Selection) ActiveIndex() int {
	return s.active
}

// ActiveGroup returns the active group, or false when there are no groups.
func (s *Selection) ActiveGroup() (catalog.Group, bool) {
	if len(s.groups) == 0 {
		return catalog.Group{}, false
	}
	return s.groups[s.active], true
}

// Filter returns the current filter text.
func (s *Selection) Filter() string {
	return string(s.filter)
}

// View recomputes the visible items of the active group.
func (s *Selection) View() View {
	g, ok := s.ActiveGroup()
	if !ok {
		return View{}
	}
	return Filter(g, string(s.filter))
}

// Cursor returns the active group's cursor, evaluated against the current
// filter.
func (s *Selection) Cursor() int {
	if len(s.groups) == 0 {
		return 0
	}
	return s.evaluate(s.View().Len())
}

// Offset returns the active group's viewport offset.
func (s *Selection) Offset() int {
	if len(s.groups) == 0 {
		return 0
	}
	s.evaluate(s.View().Len())
	return s.offsets[s.active]
}

func (s *Selection) evaluate(visible int) int {
	a := s.active
	if s.seen[a] != s.gen {
		s.cursors[a] = 0
		s.offsets[a] = 0
		s.seen[a] = s.gen
	}
	if visible == 0 {
		s.cursors[a] = 0
		s.offsets[a] = 0
		return 0
	}
	if s.cursors[a] < 0 {
		s.cursors[a] = 0
	}
	if s.cursors[a] >= visible {
		s.cursors[a] = visible - 1
	}
	return s.cursors[a]
}

// MoveGroup switches the active group with wraparound. The filter is kept.
func (s *Selection) MoveGroup(delta int) bool {
	n := len(s.groups)
	if n == 0 || delta == 0 {
		return false
	}
	old := s.active
	s.active = wrap(s.active+delta, n)
	s.evaluate(s.View().Len())
	return s.active != old
}

// MoveItem moves the cursor within the visible items with wraparound.
func (s *Selection) MoveItem(delta int) bool {
	if len(s.groups) == 0 {
		return false
	}
	n := s.View().Len()
	if n == 0 || delta == 0 {
		return false
	}
	old := s.evaluate(n)
	s.cursors[s.active] = wrap(old+delta, n)
	return s.cursors[s.active] != old
}

// PushFilter appends text to the filter.
func (s *Selection) PushFilter(text string) bool {
	if text == "" {
		return false
	}
	s.filter = append(s.filter, []rune(text)...)
	s.gen++
	return true
}

// PopFilter removes the last rune of the filter.
func (s *Selection) PopFilter() bool {
	if len(s.filter) == 0 {
		return false
	}
	s.filter = s.filter[:len(s.filter)-1]
	s.gen++
	return true
}

// ClearFilter empties the filter.
func (s *Selection) ClearFilter() bool {
	if len(s.filter) == 0 {
		return false
	}
	s.filter = s.filter[:0]
	s.gen++
	return true
}

// Resolve maps the cursor back through the visible items to the item in the
// active group's full list.
func (s *Selection) Resolve() (catalog.Group, catalog.Item, error) {
	g, ok := s.ActiveGroup()
	if !ok {
		return catalog.Group{}, catalog.Item{}, ErrNothingVisible
	}
	view := Filter(g, string(s.filter))
	if view.Len() == 0 {
		return catalog.Group{}, catalog.Item{}, ErrNothingVisible
	}
	cursor := s.evaluate(view.Len())
	return g, g.Items[view.Global[cursor]], nil
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
