package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Neighborer is the only view of a graph that BFS needs.
// Neighbors must not return nil for a node that exists, and callers of
// Neighbors (this package included) must not modify the returned slice.
type Neighborer[T comparable] interface {
	Neighbors(node T) []T
}

// VisitPolicy selects when a node is marked visited.
type VisitPolicy int

const (
	// MarkOnEnqueue marks a node visited the first time it is scheduled.
	MarkOnEnqueue VisitPolicy = iota
	// MarkOnDequeue marks a node visited only when it is expanded.
	MarkOnDequeue
)

// String returns "enqueue" or "dequeue".
func (p VisitPolicy) String() string {
	switch p {
	case MarkOnEnqueue:
		return "enqueue"
	case MarkOnDequeue:
		return "dequeue"
	default:
		return fmt.Sprintf("VisitPolicy(%d)", int(p))
	}
}

// ParseVisitPolicy maps "enqueue" / "dequeue" to a VisitPolicy.
func ParseVisitPolicy(s string) (VisitPolicy, error) {
	switch s {
	case "enqueue", "":
		return MarkOnEnqueue, nil
	case "dequeue":
		return MarkOnDequeue, nil
	default:
		return MarkOnEnqueue, fmt.Errorf("%w: unknown visit policy %q", ErrOptionViolation, s)
	}
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the search starts.
type Option[T comparable] func(*Options[T])

// Options holds parameters and callbacks to customize BFS execution.
type Options[T comparable] struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeue.
	Ctx context.Context

	// OnEnqueue is called each time a node enters the frontier.
	OnEnqueue func(node T, depth int)

	// OnDequeue is called immediately before a node is visited.
	OnDequeue func(node T, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(node T, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor T) bool

	// Policy selects when nodes are marked visited.
	Policy VisitPolicy

	err error
}

// DefaultOptions returns Options with context.Background, no-op hooks,
// no depth limit, no filtering and MarkOnEnqueue.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		Ctx:            context.Background(),
		OnEnqueue:      func(T, int) {},
		OnDequeue:      func(T, int) {},
		OnVisit:        func(T, int) error { return nil },
		FilterNeighbor: func(_, _ T) bool { return true },
		Policy:         MarkOnEnqueue,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[T comparable](fn func(node T, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[T comparable](fn func(node T, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[T comparable](fn func(node T, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth[T comparable](d int) Option[T] {
	return func(o *Options[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[T comparable](fn func(curr, neighbor T) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithVisitPolicy selects when nodes are marked visited.
func WithVisitPolicy[T comparable](p VisitPolicy) Option[T] {
	return func(o *Options[T]) {
		if p != MarkOnEnqueue && p != MarkOnDequeue {
			o.err = fmt.Errorf("%w: unknown visit policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Policy = p
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: distance (in edges) from the start for every recorded node.
//   - Parent: predecessor in the BFS tree; the start has no entry.
type Result[T comparable] struct {
	Order  []T
	Depth  map[T]int
	Parent map[T]T
}

// PathTo reconstructs the path from the start node to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[T]) PathTo(dest T) ([]T, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	path := make([]T, d+1)
	cur := dest
	for i := d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
