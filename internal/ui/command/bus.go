package command

import (
	"fmt"

	"github.com/atomicstack/justlist/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler produces the message that reports an action's outcome.
type Handler func() tea.Msg

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Handler
}

// Bus coordinates the execution of UI actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			return nil
		}
		msg := req.Handler()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
