package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/justlist/internal/catalog"
	"github.com/atomicstack/justlist/internal/launch"
	"github.com/atomicstack/justlist/internal/theme"
	"github.com/atomicstack/justlist/internal/ui/command"
	uistate "github.com/atomicstack/justlist/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the picker.
type Model struct {
	selection         *uistate.Selection
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	filterCursor      cursor.Model
	filterCursorDirty bool
	focused           bool

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus

	choice    launch.Spec
	confirmed bool
}

// NewModel initialises the UI state for the supplied groups. Width and height
// pin the viewport when greater than zero.
func NewModel(groups []catalog.Group, width, height int, showFooter bool) *Model {
	m := &Model{
		selection:  uistate.NewSelection(groups),
		bus:        command.New(),
		showFooter: showFooter,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.focused = true
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Choice returns the confirmed launch spec. ok is false when the user quit
// without confirming.
func (m *Model) Choice() (launch.Spec, bool) {
	return m.choice, m.confirmed
}

// Selection exposes the selection state driving the model.
func (m *Model) Selection() *uistate.Selection {
	return m.selection
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(resolvedMsg{}):       m.handleResolvedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if m.focused {
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
