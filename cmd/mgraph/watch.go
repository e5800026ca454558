package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/multigraph/dfs"
	"github.com/katalvlaran/multigraph/internal/config"
	"github.com/katalvlaran/multigraph/stats"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-report connectivity and max-average whenever the graph file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.graphPath == "" {
				return errNoGraph
			}
			loader, err := config.NewLoader(a.graphPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			a.summarize(out, loader.Current())
			loader.OnChange(func(f *config.GraphFile, err error) {
				if errors.Is(err, config.ErrWatch) {
					a.log.Error("watch graph file", zap.String("path", a.graphPath), zap.Error(err))
					return
				}
				if err != nil {
					a.log.Warn("reload failed, keeping previous graph", zap.Error(err))
					return
				}
				a.summarize(out, f)
			})

			stop, err := loader.Watch()
			if err != nil {
				return err
			}
			defer stop()
			a.log.Info("watching graph file", zap.String("path", a.graphPath))

			<-cmd.Context().Done()

			return nil
		},
	}
}

// summarize prints one status line for f.
func (a *app) summarize(w io.Writer, f *config.GraphFile) {
	g, err := f.Build()
	if err != nil {
		a.log.Error("build graph", zap.Error(err))
		return
	}
	line := fmt.Sprintf("vertices=%d edges=%d connected=%t", g.Order(), g.EdgeCount(), dfs.IsConnected(g))
	if v, err := stats.MaxAverageVertex(g); err == nil {
		line += fmt.Sprintf(" max-average=%s(%v)", v, stats.AverageEdgeLength(g, v))
	}
	fmt.Fprintln(w, line)
}
