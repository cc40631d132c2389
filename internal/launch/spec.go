package launch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/justlist/internal/catalog"
	"github.com/google/shlex"
)

// ErrNoExecutable is returned when a Noop spec reaches a Strategy.
var ErrNoExecutable = errors.New("launch: no executable")

// placeholder marks where the item parameter is substituted into a command
// template. Templates without it get the parameter appended.
const placeholder = "{}"

// Spec is a resolved launch request. An empty Executable means there is
// nothing to run.
type Spec struct {
	Executable string
	Argument   string
	Terminal   bool
}

// Resolve maps a group/item pair to a Spec. It has no side effects.
func Resolve(g catalog.Group, item catalog.Item) Spec {
	return Spec{
		Executable: g.Command(),
		Argument:   item.Param,
		Terminal:   g.Terminal(),
	}
}

// Noop reports whether the spec carries no executable.
func (s Spec) Noop() bool {
	return strings.TrimSpace(s.Executable) == ""
}

// Argv splits the executable template into words and places the argument.
func (s Spec) Argv() ([]string, error) {
	if s.Noop() {
		return nil, ErrNoExecutable
	}
	words, err := shlex.Split(s.Executable)
	if err != nil {
		return nil, fmt.Errorf("parse command template %q: %w", s.Executable, err)
	}
	if len(words) == 0 {
		return nil, ErrNoExecutable
	}
	substituted := false
	for i, word := range words {
		if strings.Contains(word, placeholder) {
			words[i] = strings.ReplaceAll(word, placeholder, s.Argument)
			substituted = true
		}
	}
	if !substituted {
		words = append(words, s.Argument)
	}
	return words, nil
}

func (s Spec) String() string {
	if s.Noop() {
		return "(none)"
	}
	return fmt.Sprintf("%s %q", s.Executable, s.Argument)
}
