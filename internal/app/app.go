package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/justlist/internal/catalog"
	"github.com/atomicstack/justlist/internal/launch"
	"github.com/atomicstack/justlist/internal/logging/events"
	"github.com/atomicstack/justlist/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath string
	Width       int
	Height      int
	ShowFooter  bool
	NoColor     bool
}

// Source names where a catalog is read from for tracing.
func (c Config) Source() string {
	if c.CatalogPath == "" {
		return "stdin"
	}
	return c.CatalogPath
}

// LoadCatalog reads the catalog named by cfg, falling back to stdin. A
// terminal on stdin means nothing was piped in.
func LoadCatalog(cfg Config, stdin *os.File) (catalog.Catalog, error) {
	var in io.Reader
	if cfg.CatalogPath == "" {
		if stdin == nil || isatty.IsTerminal(stdin.Fd()) || isatty.IsCygwinTerminal(stdin.Fd()) {
			return catalog.Catalog{}, fmt.Errorf("no catalog: pass a file or pipe one on stdin: %w", catalog.ErrNoInput)
		}
		in = stdin
	}
	c, err := catalog.Load(cfg.CatalogPath, in)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load catalog from %s: %w", cfg.Source(), err)
	}
	items := 0
	for _, g := range c.Groups {
		items += len(g.Items)
	}
	events.App.CatalogLoaded(cfg.Source(), len(c.Groups), items)
	return c, nil
}

// Run loads the catalog, runs the picker and returns the confirmed launch
// spec. ok is false when the user quit without confirming. The terminal is
// restored before Run returns.
func Run(cfg Config) (launch.Spec, bool, error) {
	c, err := LoadCatalog(cfg, os.Stdin)
	if err != nil {
		return launch.Spec{}, false, err
	}
	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	model := ui.NewModel(c.Groups, cfg.Width, cfg.Height, cfg.ShowFooter)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.CatalogPath == "" {
		// stdin carries the catalog, so keys come from the controlling terminal
		opts = append(opts, tea.WithInputTTY())
	}
	program := tea.NewProgram(model, opts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Exit("killed")
		return launch.Spec{}, false, nil
	}
	if err != nil {
		return launch.Spec{}, false, err
	}
	spec, ok := model.Choice()
	if ok {
		events.App.Exit("confirm")
	} else {
		events.App.Exit("quit")
	}
	return spec, ok, nil
}
