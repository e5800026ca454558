package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/multigraph/bellmanford"
	"github.com/katalvlaran/multigraph/bfs"
	"github.com/katalvlaran/multigraph/core"
	"github.com/katalvlaran/multigraph/dfs"
	"github.com/katalvlaran/multigraph/stats"
)

func newPrintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print every vertex with its outgoing edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			return core.Fprint(cmd.OutOrStdout(), g)
		},
	}
}

func newWalkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "walk [start]",
		Short: "List vertices in breadth-first order from start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			if !g.HasVertex(args[0]) {
				a.log.Warn("start vertex not in graph", zap.String("start", args[0]))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(bfs.Walk(g, args[0]), " "))

			return nil
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	var earlyStop bool
	cmd := &cobra.Command{
		Use:   "path [from] [to]",
		Short: "Print the minimum-weight path between two vertices",
		Long: `Runs Bellman-Ford from the first vertex. Negative weights are allowed;
a negative cycle reachable from the source is reported as an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			if !g.HasVertex(args[1]) {
				return fmt.Errorf("%w: target %v", bellmanford.ErrVertexNotFound, args[1])
			}
			var opts []bellmanford.Option
			if earlyStop {
				opts = append(opts, bellmanford.WithEarlyStop())
			}
			res, err := bellmanford.BellmanFord(g, args[0], opts...)
			if err != nil {
				if errors.Is(err, bellmanford.ErrNegativeCycle) {
					a.log.Warn("negative cycle", zap.String("from", args[0]), zap.Error(err))
				}
				return err
			}

			out := cmd.OutOrStdout()
			path := res.PathTo(args[1])
			if len(path) == 0 && args[0] != args[1] {
				fmt.Fprintln(out, "no path")
				return nil
			}
			for _, e := range path {
				fmt.Fprintln(out, e)
			}
			fmt.Fprintf(out, "total: %v\n", bellmanford.PathWeight(path))

			return nil
		},
	}
	cmd.Flags().BoolVar(&earlyStop, "early-stop", false, "stop relaxing once a round changes nothing")

	return cmd
}

func newConnectedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connected",
		Short: "Report whether every vertex reaches every other vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dfs.IsConnected(g))

			return nil
		},
	}
}

func newAverageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "average [vertex]",
		Short: "Print the mean outgoing edge weight of one vertex, or of all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				fmt.Fprintln(out, stats.AverageEdgeLength(g, args[0]))
				return nil
			}
			avgs, err := stats.Averages(g)
			if err != nil {
				return err
			}
			for pair := avgs.Oldest(); pair != nil; pair = pair.Next() {
				fmt.Fprintf(out, "%s\t%v\n", pair.Key, pair.Value)
			}

			return nil
		},
	}
}

func newMaxAverageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "max-average",
		Short: "Print the vertex with the greatest mean outgoing edge weight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			v, err := stats.MaxAverageVertex(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", v, stats.AverageEdgeLength(g, v))

			return nil
		},
	}
}
