package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/gammazero/deque"
)

// queueItem pairs a node with its BFS depth and its parent.
type queueItem[T comparable] struct {
	node      T
	depth     int
	parent    T
	hasParent bool
}

// walker encapsulates mutable BFS state for one traversal.
type walker[T comparable] struct {
	graph   Neighborer[T]
	opts    Options[T]
	ctx     context.Context
	queue   deque.Deque[queueItem[T]]
	visited map[T]bool
	res     *Result[T]

	goal    T
	hasGoal bool
	found   bool
}

// Search runs breadth-first search on g from start, applying any number of
// functional Options, and returns the full traversal.
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// ctx.Err() on cancellation, or any OnVisit error.
func Search[T comparable](g Neighborer[T], start T, opts ...Option[T]) (*Result[T], error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	w.enqueue(queueItem[T]{node: start})

	return w.res, w.loop()
}

// Path returns a shortest node sequence from start to goal, both included.
// If start == goal the result is [start] and no search runs. If goal cannot
// be reached (or is pruned by MaxDepth / FilterNeighbor) the result is nil
// with a nil error. Errors are those of Search.
func Path[T comparable](g Neighborer[T], start, goal T, opts ...Option[T]) ([]T, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if start == goal {
		return []T{start}, nil
	}

	w.goal, w.hasGoal = goal, true
	w.enqueue(queueItem[T]{node: start})
	if err = w.loop(); err != nil {
		return nil, err
	}
	if !w.found {
		return nil, nil
	}

	path, err := w.res.PathTo(goal)
	if errors.Is(err, ErrNoPath) {
		return nil, nil
	}

	return path, err
}

// newWalker validates inputs and prepares per-call state.
func newWalker[T comparable](g Neighborer[T], opts []Option[T]) (*walker[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker[T]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[T]bool),
		res: &Result[T]{
			Depth:  make(map[T]int),
			Parent: make(map[T]T),
		},
	}, nil
}

// record stores depth and parent for item's node.
func (w *walker[T]) record(item queueItem[T]) {
	w.visited[item.node] = true
	w.res.Depth[item.node] = item.depth
	if item.hasParent {
		w.res.Parent[item.node] = item.parent
	}
}

// enqueue schedules item, marking it visited under MarkOnEnqueue.
func (w *walker[T]) enqueue(item queueItem[T]) {
	if w.opts.Policy == MarkOnEnqueue {
		w.record(item)
	}
	w.opts.OnEnqueue(item.node, item.depth)
	w.queue.PushBack(item)
}

// loop processes the frontier until it is empty, the goal is reached,
// an error occurs, or the context is cancelled.
func (w *walker[T]) loop() error {
	for w.queue.Len() > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item, ok := w.dequeue()
		if !ok {
			continue
		}
		if err := w.visit(item); err != nil {
			return err
		}
		if w.hasGoal && item.node == w.goal {
			w.found = true
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the front item. Under MarkOnDequeue it marks the node visited,
// or reports false for a stale duplicate that was already expanded.
func (w *walker[T]) dequeue() (queueItem[T], bool) {
	item := w.queue.PopFront()
	if w.opts.Policy == MarkOnDequeue {
		if w.visited[item.node] {
			return item, false
		}
		w.record(item)
	}
	w.opts.OnDequeue(item.node, item.depth)

	return item, true
}

// visit records the node in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem[T]) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// neighbor that is not yet visited.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.node) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		w.enqueue(queueItem[T]{node: nbr, depth: next, parent: item.node, hasParent: true})
	}
}
