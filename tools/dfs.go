package main

import (
	"context"
	"log/slog"
	"math"

	"github.com/navijation/njexercises/graph"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

const maxVertices = math.MaxInt32

func (me runner) depthFirst(_ context.Context, cmd *cli.Command) error {
	if cmd.Uint("vertices") > maxVertices {
		return errors.Errorf("usage: dfs --vertices N with N at most %d", maxVertices)
	}
	vertices := int(cmd.Uint("vertices"))
	if cmd.Uint("start") >= uint64(vertices) {
		return errors.Errorf("start vertex %d out of range [0, %d)", cmd.Uint("start"), vertices)
	}
	start := int(cmd.Uint("start"))

	g := graph.New(vertices)
	for _, arg := range cmd.Args().Slice() {
		src, dest, err := parseEdge(arg)
		if err != nil {
			return err
		}
		// the graph panics on unknown vertices, so reject them here
		for _, v := range []int{src, dest} {
			if v < 0 || v >= vertices {
				return errors.Errorf("edge %q: vertex %d out of range [0, %d)", arg, v, vertices)
			}
		}
		g.AddEdge(src, dest)
	}

	visitOrder := g.DFS(start)
	me.logger(cmd).Debug("traversed graph",
		slog.Int("start", start),
		slog.Int("visited", len(visitOrder)),
		slog.Int("unreached", vertices-len(visitOrder)),
	)

	return printInts(me.out, visitOrder)
}
