package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/navijation/njexercises/tree/bst"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func (me runner) searchTree(_ context.Context, cmd *cli.Command) error {
	values, err := parseInts(cmd.Args().Slice())
	if err != nil {
		return err
	}

	queries, err := parseIntList(cmd.String("find"))
	if err != nil {
		return errors.Wrap(err, "invalid --find")
	}
	if len(queries) == 0 {
		return errors.New("usage: bst --find X[,X ...] [N ...]")
	}

	logger := me.logger(cmd)

	tree := bst.New[int]()
	for _, value := range values {
		if !tree.Insert(value) {
			logger.Debug("skipped duplicate", slog.Int("value", value))
		}
	}
	logger.Debug("built tree", slog.Int("size", tree.Len()), slog.Int("height", tree.Height()))

	for _, query := range queries {
		if _, err := fmt.Fprintf(me.out, "%d: %t\n", query, tree.Search(query)); err != nil {
			return err
		}
	}
	return nil
}
