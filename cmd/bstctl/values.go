package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/g-m-twostay/ordtree/Trees"
)

// intList is a flag holding comma separated integers.
type intList []int

func (l *intList) String() string {
	s := make([]string, len(*l))
	for i, v := range *l {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ",")
}

func (l *intList) Set(s string) error {
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", f, err)
		}
		*l = append(*l, v)
	}
	return nil
}

// treeFlags are the flags shared by the subcommands that build a tree.
type treeFlags struct {
	values, remove intList
}

func (tf *treeFlags) register(f *flag.FlagSet) {
	f.Var(&tf.values, "values", "Comma separated values to insert, in order")
	f.Var(&tf.remove, "remove", "Comma separated values to remove after inserting")
}

func (tf *treeFlags) build() *Trees.BST[int, uint32] {
	tree := Trees.NewOrdered[int, uint32](uint32(len(tf.values)))
	for _, v := range tf.values {
		if !tree.Insert(v) {
			log.WithField("value", v).Debug("ignoring duplicate")
		}
	}
	for _, v := range tf.remove {
		if !tree.Remove(v) {
			log.WithField("value", v).Warn("value to remove isn't in the tree")
		}
	}
	return tree
}

func parseOrder(s string) (Trees.Order, error) {
	switch s {
	case "in":
		return Trees.InOrderWalk, nil
	case "pre":
		return Trees.PreOrderWalk, nil
	case "post":
		return Trees.PostOrderWalk, nil
	case "level":
		return Trees.LevelOrderWalk, nil
	}
	return 0, fmt.Errorf("unknown order %q, want one of in, pre, post, level", s)
}
