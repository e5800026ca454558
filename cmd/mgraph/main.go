// Command mgraph loads a YAML graph file and runs the multigraph
// algorithms on it: walks, shortest paths, connectivity and edge-weight
// averages. It can also generate fixture graphs.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
