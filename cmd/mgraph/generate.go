package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/multigraph/builder"
	"github.com/katalvlaran/multigraph/internal/config"
)

// generators maps a kind name to its builder constructor.
var generators = map[string]func(n int, p float64) builder.Constructor{
	"path":     func(n int, _ float64) builder.Constructor { return builder.Path(n) },
	"cycle":    func(n int, _ float64) builder.Constructor { return builder.Cycle(n) },
	"star":     func(n int, _ float64) builder.Constructor { return builder.Star(n) },
	"complete": func(n int, _ float64) builder.Constructor { return builder.Complete(n) },
	"grid":     func(n int, _ float64) builder.Constructor { return builder.Grid(n, n) },
	"random":   builder.RandomSparse,
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		seed       int64
		prob       float64
		letters    bool
		prefix     string
		minW, maxW float64
	)
	cmd := &cobra.Command{
		Use:       "generate [path|cycle|star|complete|grid|random] [n]",
		Short:     "Write a generated graph file to stdout",
		Long:      "Builds a fixture graph with n vertices (an n×n lattice for grid) and prints it as YAML.",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"path", "cycle", "star", "complete", "grid", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := generators[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q", args[0])
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid vertex count %q: %w", args[1], err)
			}

			vertices := n
			if args[0] == "grid" {
				vertices = n * n
			}

			bopts := []builder.BuilderOption{builder.WithSeed(seed)}
			switch {
			case letters:
				if vertices > 26 {
					return fmt.Errorf("--letters supports at most 26 vertices, got %d", vertices)
				}
				bopts = append(bopts, builder.WithIDScheme(builder.SymbolIDFn))
			case prefix != "":
				bopts = append(bopts, builder.WithIDScheme(builder.PrefixIDFn(prefix)))
			}
			if maxW > minW {
				bopts = append(bopts, builder.WithWeightFn(builder.UniformWeight(minW, maxW)))
			}

			g, err := builder.BuildGraph(bopts, gen(n, prob))
			if err != nil {
				return err
			}
			out, err := config.Marshal(g)
			if err != nil {
				return err
			}
			a.log.Debug("generated graph",
				zap.String("kind", args[0]),
				zap.Int("vertices", g.Order()),
				zap.Int("edges", g.EdgeCount()),
			)
			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
	f := cmd.Flags()
	f.Int64Var(&seed, "seed", 1, "random seed for random graphs and weights")
	f.Float64Var(&prob, "prob", 0.3, "edge probability for random graphs")
	f.BoolVar(&letters, "letters", false, "name vertices A, B, C, ...")
	f.StringVar(&prefix, "prefix", "", "name vertices <prefix>0, <prefix>1, ...")
	f.Float64Var(&minW, "min-weight", builder.DefaultEdgeWeight, "lower bound of uniform edge weights")
	f.Float64Var(&maxW, "max-weight", builder.DefaultEdgeWeight, "upper bound of uniform edge weights (exclusive)")

	return cmd
}
