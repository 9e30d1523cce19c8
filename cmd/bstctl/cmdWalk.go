package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/g-m-twostay/ordtree/Trees"
	"github.com/google/subcommands"
)

type cmdWalk struct {
	treeFlags
	argOrder string
}

func (cmd *cmdWalk) Name() string     { return "walk" }
func (cmd *cmdWalk) Synopsis() string { return "print the elements of a tree in a traversal order" }
func (cmd *cmdWalk) Usage() string {
	return "walk -values 5,3,8 [-remove 3] [-order in|pre|post|level]\n"
}

func (cmd *cmdWalk) SetFlags(f *flag.FlagSet) {
	cmd.register(f)
	f.StringVar(&cmd.argOrder, "order", "in", "Traversal order: in, pre, post or level")
}

func (cmd *cmdWalk) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	o, err := parseOrder(cmd.argOrder)
	if err != nil {
		log.Errorln(err)
		return subcommands.ExitUsageError
	}
	writeWalk(os.Stdout, cmd.build(), o)
	return subcommands.ExitSuccess
}

func writeWalk(w io.Writer, tree *Trees.BST[int, uint32], o Trees.Order) {
	var s []string
	tree.Walk(o, func(v int) bool {
		s = append(s, strconv.Itoa(v))
		return true
	}, nil)
	fmt.Fprintln(w, strings.Join(s, " "))
}
