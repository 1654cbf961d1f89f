package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)

	if err := app.Run(context.Background(), os.Args); err != nil {
		newLogger(os.Stderr, false).Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// runner holds the destinations shared by every subcommand so tests can
// capture output.
type runner struct {
	out    io.Writer
	errOut io.Writer
}

func newApp(out, errOut io.Writer) *cli.Command {
	r := runner{out: out, errOut: errOut}

	return &cli.Command{
		Name:      "njexercises",
		Usage:     "run the heap, search tree and graph exercises from the shell",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			verboseFlag(),
		},
		Commands: []*cli.Command{
			{
				Name:      "heapsort",
				Usage:     "drain integers through a binary heap",
				ArgsUsage: "N [N ...]",
				Action:    r.heapSort,
				Flags: []cli.Flag{
					maxFlag(),
					&cli.UintFlag{
						Name:        "limit",
						DefaultText: "all",
						Usage:       "stop after extracting this many values",
					},
				},
			},
			{
				Name:      "merge",
				Usage:     "merge comma separated sorted integer lists",
				ArgsUsage: "LIST [LIST ...]",
				Action:    r.mergeLists,
				Flags: []cli.Flag{
					maxFlag(),
				},
			},
			{
				Name:      "bst",
				Usage:     "insert integers into a binary search tree and look values up",
				ArgsUsage: "N [N ...]",
				Action:    r.searchTree,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "find",
						Usage: "comma separated values to search for",
					},
				},
			},
			{
				Name:      "dfs",
				Usage:     "print the depth-first visitation order of an undirected graph",
				ArgsUsage: "U-V [U-V ...]",
				Action:    r.depthFirst,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:     "vertices",
						Usage:    "number of vertices in the graph",
						Required: true,
					},
					&cli.UintFlag{
						Name:        "start",
						DefaultText: "0",
						Usage:       "vertex to start the traversal from",
					},
				},
			},
		},
	}
}

func maxFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "max",
		Usage: "extract largest values first",
	}
}

func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log debug output to stderr",
	}
}
