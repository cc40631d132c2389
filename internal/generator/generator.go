// Package generator implements the catalog composition protocol. A generator
// reads a catalog from stdin, appends its own groups and writes the result to
// stdout, so independent generators can be chained with shell pipes.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atomicstack/justlist/internal/catalog"
	"github.com/atomicstack/justlist/internal/logging"
	"github.com/atomicstack/justlist/internal/logging/events"
)

// Augmenter produces groups to append to a catalog. Implementations stamp
// their own command template and terminal flag on every group they return.
type Augmenter interface {
	Name() string
	Augment(ctx context.Context) ([]catalog.Group, error)
}

// Stdio carries the streams a generator stage runs against.
type Stdio struct {
	In           io.Reader
	InIsTerminal bool
	Out          io.Writer
	Err          io.Writer
}

// Apply runs every augmenter in order and appends what they produce to a copy
// of in. A failing augmenter contributes nothing and the rest still run; its
// error is returned alongside the result.
func Apply(ctx context.Context, in catalog.Catalog, augs ...Augmenter) (catalog.Catalog, []error) {
	out := in.Clone()
	var errs []error
	for _, aug := range augs {
		events.Generator.Start(aug.Name(), len(out.Groups))
		groups, err := aug.Augment(ctx)
		if err != nil {
			err = fmt.Errorf("%s: %w", aug.Name(), err)
			events.Generator.Failed(aug.Name(), err)
			errs = append(errs, err)
			continue
		}
		out = out.Append(groups...)
		events.Generator.Added(aug.Name(), len(groups))
	}
	events.Generator.Done(len(out.Groups))
	return out, errs
}

// Run executes one pipeline stage. Input is ignored when stdin is a terminal,
// and an empty stream counts as an empty catalog. Malformed input is fatal.
// Augmenter failures are reported on Err and the input passes through.
func Run(ctx context.Context, stdio Stdio, augs ...Augmenter) error {
	in, err := readInput(stdio)
	if err != nil {
		logging.Error(err)
		return err
	}
	out, errs := Apply(ctx, in, augs...)
	for _, e := range errs {
		logging.Error(e)
		if stdio.Err != nil {
			fmt.Fprintf(stdio.Err, "justlist-gen: %v\n", e)
		}
	}
	if err := catalog.Encode(stdio.Out, out); err != nil {
		logging.Error(err)
		return err
	}
	return nil
}

func readInput(stdio Stdio) (catalog.Catalog, error) {
	if stdio.InIsTerminal || stdio.In == nil {
		return catalog.Empty(), nil
	}
	c, err := catalog.Decode(stdio.In)
	if errors.Is(err, catalog.ErrNoInput) {
		return catalog.Empty(), nil
	}
	if err != nil {
		return catalog.Catalog{}, err
	}
	return c, nil
}

// stamp applies a generator's launch settings to every group.
func stamp(groups []catalog.Group, command string, terminal bool) []catalog.Group {
	for i := range groups {
		groups[i].CommandTemplate = catalog.String(command)
		groups[i].IsTerminal = catalog.Bool(terminal)
	}
	return groups
}
