package main

import (
	"context"
	"flag"
	"os"

	"github.com/g-m-twostay/ordtree/Trees"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&cmdWalk{}, "")
	subcommands.Register(&cmdStats{}, "")
	verbose := flag.Bool("v", false, "Log every removal")
	flag.Parse()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
		Trees.Log.SetLevel(logrus.DebugLevel)
	}
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
