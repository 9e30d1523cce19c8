package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/g-m-twostay/ordtree/Trees"
	"github.com/google/subcommands"
)

type cmdStats struct {
	treeFlags
}

func (cmd *cmdStats) Name() string     { return "stats" }
func (cmd *cmdStats) Synopsis() string { return "print the size and shape of a tree" }
func (cmd *cmdStats) Usage() string    { return "stats -values 5,3,8 [-remove 3]\n" }

func (cmd *cmdStats) SetFlags(f *flag.FlagSet) {
	cmd.register(f)
}

func (cmd *cmdStats) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	writeStats(os.Stdout, cmd.build())
	return subcommands.ExitSuccess
}

func writeStats(w io.Writer, tree *Trees.BST[int, uint32]) {
	fmt.Fprintf(w, "size:   %d\n", tree.Size())
	fmt.Fprintf(w, "levels: %d\n", tree.Levels())
	fmt.Fprintf(w, "height: %d\n", tree.Height())
	fmt.Fprintf(w, "width:  %d\n", tree.Width())
	for _, q := range []struct {
		name string
		get  func() (int, error)
	}{{"root", tree.Root}, {"min", tree.Minimum}, {"max", tree.Maximum}} {
		v, err := q.get()
		var e *Trees.EmptyTreeError
		if errors.As(err, &e) {
			fmt.Fprintf(w, "%-7s (empty)\n", q.name+":")
			continue
		}
		fmt.Fprintf(w, "%-7s %d\n", q.name+":", v)
	}
}
