// Command justlist-gen produces catalogs for the justlist picker. Each
// subcommand reads a catalog on stdin, appends its groups and writes the result
// to stdout, so generators chain with pipes:
//
//	justlist-gen git-repos code -w ~/src | justlist-gen search pdf zathura | justlist
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "justlist-gen: %v\n", err)
		os.Exit(1)
	}
}
