package bfs

import (
	"fmt"

	"github.com/katalvlaran/multigraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable, W core.Weight] struct {
	graph   *core.Graph[V, W]
	opts    Options[V]
	queue   []queueItem[V]
	visited map[V]bool
	res     *Result[V]
}

// BFS runs breadth-first search on g starting from start, following
// outgoing edges only, applying any number of functional Options.
//
// Visit order: start first, then each layer in the order its vertices were
// discovered while scanning the previous layer; within one discoverer,
// neighbors follow g.OutEdges order. Parallel edges and self-loops never
// enqueue a vertex twice.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS[V comparable, W core.Weight](g *core.Graph[V, W], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.Order()
	w := &walker[V, W]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[V], 0, n),
		visited: make(map[V]bool, n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// Walk returns the BFS visitation order from start. A start vertex that is
// not in the graph (or a nil graph) yields an empty slice, not an error.
// Complexity: O(V + E).
func Walk[V comparable, W core.Weight](g *core.Graph[V, W], start V) []V {
	res, err := BFS(g, start)
	if err != nil {
		return []V{}
	}

	return res.Order
}

// enqueue marks v visited at depth d, calls OnEnqueue, and adds it to the queue.
func (w *walker[V, W]) enqueue(v V, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker[V, W]) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[V, W]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V, W]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors scans outgoing edges in insertion order, applies filtering
// and MaxDepth, and enqueues each unseen destination.
func (w *walker[V, W]) enqueueNeighbors(item queueItem[V]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.OutEdges(item.v) {
		if w.visited[e.To] {
			continue
		}
		if !w.opts.FilterNeighbor(item.v, e.To) {
			continue
		}
		w.res.Parent[e.To] = item.v
		w.enqueue(e.To, nextDepth)
	}
}
