package state

// MoveCursorHome moves the cursor to the first visible item.
func (s *Selection) MoveCursorHome() bool {
	if len(s.groups) == 0 {
		return false
	}
	n := s.View().Len()
	old := s.evaluate(n)
	if n == 0 {
		return false
	}
	s.cursors[s.active] = 0
	return old != 0
}

// MoveCursorEnd moves the cursor to the last visible item.
func (s *Selection) MoveCursorEnd() bool {
	if len(s.groups) == 0 {
		return false
	}
	n := s.View().Len()
	old := s.evaluate(n)
	if n == 0 {
		return false
	}
	s.cursors[s.active] = n - 1
	return old != n-1
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (s *Selection) MoveCursorPageUp(maxVisible int) bool {
	return s.moveCursorBy(-1, maxVisible)
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (s *Selection) MoveCursorPageDown(maxVisible int) bool {
	return s.moveCursorBy(1, maxVisible)
}

func (s *Selection) moveCursorBy(direction, maxVisible int) bool {
	if len(s.groups) == 0 {
		return false
	}
	n := s.View().Len()
	old := s.evaluate(n)
	if n == 0 {
		return false
	}
	next := old + direction*pageSize(n, maxVisible)
	if next < 0 {
		next = 0
	}
	if next >= n {
		next = n - 1
	}
	s.cursors[s.active] = next
	return next != old
}

func pageSize(total, maxVisible int) int {
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the active group's viewport offset so the
// cursor stays visible.
func (s *Selection) EnsureCursorVisible(maxVisible int) {
	if len(s.groups) == 0 {
		return
	}
	n := s.View().Len()
	cursor := s.evaluate(n)
	a := s.active
	if n == 0 || maxVisible <= 0 {
		s.offsets[a] = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offsets[a] > maxOffset {
		s.offsets[a] = maxOffset
	}
	if s.offsets[a] < 0 {
		s.offsets[a] = 0
	}
	if cursor < s.offsets[a] {
		s.offsets[a] = cursor
	}
	upper := s.offsets[a] + maxVisible - 1
	if cursor > upper {
		s.offsets[a] = cursor - maxVisible + 1
		if s.offsets[a] < 0 {
			s.offsets[a] = 0
		}
		if s.offsets[a] > maxOffset {
			s.offsets[a] = maxOffset
		}
	}
}
