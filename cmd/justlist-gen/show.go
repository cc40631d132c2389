package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/atomicstack/justlist/internal/catalog"
	"github.com/atomicstack/justlist/internal/format/table"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [FILE]",
		Short: "Print a catalog as an aligned table.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			c, err := catalog.Load(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return writeTable(cmd.OutOrStdout(), c)
		},
	}
}

func writeTable(w io.Writer, c catalog.Catalog) error {
	rows := [][]string{{"GROUP", "#", "LABEL", "PARAM", "COMMAND", "TERMINAL"}}
	for _, g := range c.Groups {
		command := g.Command()
		if g.CommandTemplate == nil {
			command = "-"
		}
		if len(g.Items) == 0 {
			rows = append(rows, []string{g.Label, "0", "", "", command, strconv.FormatBool(g.Terminal())})
			continue
		}
		for i, item := range g.Items {
			rows = append(rows, []string{g.Label, strconv.Itoa(i + 1), item.Label, item.Param, command, strconv.FormatBool(g.Terminal())})
		}
	}
	aligns := []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignLeft}
	for _, line := range table.Format(rows, aligns) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
