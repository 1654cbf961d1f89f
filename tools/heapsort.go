package main

import (
	"context"
	"iter"
	"log/slog"
	"slices"

	"github.com/navijation/njexercises/util"
	"github.com/navijation/njexercises/util/heap"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func (me runner) heapSort(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return errors.New("usage: heapsort [--max] [--limit K] N [N ...]")
	}

	values, err := parseInts(cmd.Args().Slice())
	if err != nil {
		return err
	}

	var h *heap.Heap[int]
	if cmd.Bool("max") {
		h = heap.NewMax(values...)
	} else {
		h = heap.NewMin(values...)
	}

	logger := me.logger(cmd)
	root := h.Peek()
	if value, exists := root.Unpack(); exists {
		logger.Debug("built heap", slog.Int("size", h.Len()), slog.Int("root", value))
	}

	extracted := h.Drain()
	if limit := cmd.Uint("limit"); limit > 0 {
		extracted = util.Take(extracted, int(min(limit, uint64(h.Len()))))
	}

	sorted := slices.Collect(extracted)
	logger.Debug("drained heap", slog.Int("extracted", len(sorted)), slog.Int("remaining", h.Len()))

	return printInts(me.out, sorted)
}

func (me runner) mergeLists(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return errors.New("usage: merge [--max] LIST [LIST ...]")
	}

	order := intOrder(cmd.Bool("max"))

	var seqs []iter.Seq[int]
	for i, list := range cmd.Args().Slice() {
		values, err := parseIntList(list)
		if err != nil {
			return errors.Wrapf(err, "list #%d", i+1)
		}
		if !isSorted(values, order) {
			return errors.Errorf("list #%d (%q) is not sorted", i+1, list)
		}
		seqs = append(seqs, slices.Values(values))
	}

	me.logger(cmd).Debug("merging lists", slog.Int("lists", len(seqs)))

	return printInts(me.out, slices.Collect(heap.MergeSorted(order, seqs...)))
}
