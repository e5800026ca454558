package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/multigraph/core"
	"github.com/katalvlaran/multigraph/internal/config"
	"github.com/katalvlaran/multigraph/internal/logging"
)

// Environment fallbacks for the persistent flags.
const (
	envGraph     = "MGRAPH_GRAPH"
	envLogLevel  = "MGRAPH_LOG_LEVEL"
	envLogFormat = "MGRAPH_LOG_FORMAT"
)

var errNoGraph = errors.New("no graph file: set --graph or " + envGraph)

// app carries state shared by every subcommand of one invocation.
type app struct {
	graphPath string
	logLevel  string
	logFormat string
	log       *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "mgraph",
		Short: "Analyze directed weighted multigraphs",
		Long: `mgraph loads a graph file (YAML: vertices plus from/to/weight edges)
and answers questions about it: BFS walks, Bellman-Ford shortest paths,
strong connectivity and per-vertex average edge weight.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logging.New(a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.log = log.With(zap.String("command", cmd.Name()))

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.graphPath, "graph", "g", getEnv(envGraph, ""), "path to the YAML graph file")
	flags.StringVar(&a.logLevel, "log-level", getEnv(envLogLevel, "info"), "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", getEnv(envLogFormat, logging.FormatConsole), "log format: console or json")

	rootCmd.AddCommand(
		newPrintCmd(a),
		newWalkCmd(a),
		newPathCmd(a),
		newConnectedCmd(a),
		newAverageCmd(a),
		newMaxAverageCmd(a),
		newGenerateCmd(a),
		newWatchCmd(a),
	)

	return rootCmd
}

// loadGraph reads and builds the graph named by --graph.
func (a *app) loadGraph() (*core.Graph[string, float64], error) {
	if a.graphPath == "" {
		return nil, errNoGraph
	}
	f, err := config.Load(a.graphPath)
	if err != nil {
		a.log.Error("load graph", zap.String("path", a.graphPath), zap.Error(err))
		return nil, err
	}
	g, err := f.Build()
	if err != nil {
		return nil, err
	}
	a.log.Debug("graph loaded",
		zap.String("path", a.graphPath),
		zap.Int("vertices", g.Order()),
		zap.Int("edges", g.EdgeCount()),
	)

	return g, nil
}

func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	return value
}
