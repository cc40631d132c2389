package ui

import (
	"unicode"

	"github.com/atomicstack/justlist/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const filterPlaceholder = "(type to filter)"

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// handleTextInput applies filter edits. It reports whether the key was
// consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.removeFilterRune()
		return true
	case tea.KeyEsc, tea.KeyCtrlU:
		m.clearFilter()
		return true
	case tea.KeySpace:
		m.appendToFilter(" ")
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		m.appendToFilter(string(msg.Runes))
		return true
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	if !m.selection.PushFilter(text) {
		return false
	}
	m.afterFilterChange()
	events.Filter.Append(m.selection.ActiveIndex(), m.selection.Filter())
	return true
}

func (m *Model) removeFilterRune() bool {
	if !m.selection.PopFilter() {
		return false
	}
	m.afterFilterChange()
	events.Filter.Backspace(m.selection.ActiveIndex(), m.selection.Filter())
	return true
}

func (m *Model) clearFilter() bool {
	if !m.selection.ClearFilter() {
		return false
	}
	m.afterFilterChange()
	events.Filter.Cleared(m.selection.ActiveIndex())
	return true
}

func (m *Model) afterFilterChange() {
	m.filterCursorDirty = true
	m.forceClearInfo()
	m.errMsg = ""
	m.syncViewport()
	events.Filter.Visible(m.selection.ActiveIndex(), m.selection.View().Len())
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.selection.Filter()
	if text == "" {
		runes := []rune(filterPlaceholder)
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	return prompt + render(styles.Filter, text) + m.renderFilterCursor(" ")
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
