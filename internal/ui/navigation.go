package ui

import (
	"errors"
	"fmt"

	"github.com/atomicstack/justlist/internal/launch"
	"github.com/atomicstack/justlist/internal/logging/events"
	"github.com/atomicstack/justlist/internal/ui/command"
	uistate "github.com/atomicstack/justlist/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// resolvedMsg carries the launch spec for the confirmed item.
type resolvedMsg struct {
	spec launch.Spec
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return m.quit("interrupt")
	case "q":
		if m.selection.Filter() == "" {
			return m.quit("q")
		}
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "enter":
		return m.handleEnterKey()
	case "left", "shift+tab":
		m.moveGroup(-1)
	case "right", "tab":
		m.moveGroup(1)
	case "up", "ctrl+p":
		m.moveCursor(-1)
	case "down", "ctrl+n":
		m.moveCursor(1)
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

func (m *Model) quit(reason string) tea.Cmd {
	events.UI.Quit(reason)
	return tea.Quit
}

// handleEnterKey resolves the highlighted item. An empty view is a no-op that
// leaves the picker running.
func (m *Model) handleEnterKey() tea.Cmd {
	g, item, err := m.selection.Resolve()
	if err != nil {
		if errors.Is(err, uistate.ErrNothingVisible) {
			m.setInfo("Nothing to select.")
			return nil
		}
		m.errMsg = err.Error()
		return nil
	}
	events.UI.Confirm(g.Label, item.Label)
	return m.bus.Execute(command.Request{
		ID:    fmt.Sprintf("group:%d", m.selection.ActiveIndex()),
		Label: item.Label,
		Handler: func() tea.Msg {
			return resolvedMsg{spec: launch.Resolve(g, item)}
		},
	})
}

func (m *Model) handleResolvedMsg(msg tea.Msg) tea.Cmd {
	resolved, ok := msg.(resolvedMsg)
	if !ok {
		return nil
	}
	m.choice = resolved.spec
	m.confirmed = true
	return m.quit("confirm")
}

func (m *Model) moveGroup(delta int) {
	if !m.selection.MoveGroup(delta) {
		return
	}
	if g, ok := m.selection.ActiveGroup(); ok {
		events.UI.GroupSwitch(m.selection.ActiveIndex(), g.Label)
	}
	m.forceClearInfo()
	m.syncViewport()
}

func (m *Model) moveCursor(delta int) {
	if m.selection.MoveItem(delta) {
		events.UI.Cursor(m.selection.ActiveIndex(), m.selection.Cursor())
	}
	m.syncViewport()
}

func (m *Model) moveCursorPageUp() {
	if m.selection.MoveCursorPageUp(m.maxVisibleItems()) {
		events.UI.Cursor(m.selection.ActiveIndex(), m.selection.Cursor())
	}
	m.syncViewport()
}

func (m *Model) moveCursorPageDown() {
	if m.selection.MoveCursorPageDown(m.maxVisibleItems()) {
		events.UI.Cursor(m.selection.ActiveIndex(), m.selection.Cursor())
	}
	m.syncViewport()
}

func (m *Model) moveCursorHome() {
	if m.selection.MoveCursorHome() {
		events.UI.Cursor(m.selection.ActiveIndex(), m.selection.Cursor())
	}
	m.syncViewport()
}

func (m *Model) moveCursorEnd() {
	if m.selection.MoveCursorEnd() {
		events.UI.Cursor(m.selection.ActiveIndex(), m.selection.Cursor())
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.selection.EnsureCursorVisible(m.maxVisibleItems())
}
