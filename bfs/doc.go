// Package bfs provides a generic breadth-first search over any graph that can
// list the neighbors of a node, returning unweighted shortest-path distances,
// parent links, visit order, and early-exit shortest paths.
//
// What
//
//   - Search explores every node reachable from a start, in non-decreasing
//     distance (edge count), and returns a Result with:
//   - Order: visit sequence
//   - Depth: map from node → distance from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Path stops as soon as a goal is dequeued and returns the node sequence
//     from start to goal, or nil if the goal is unreachable.
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds layers.
//
// Frontier
//
//	The frontier is a ring-buffer deque (github.com/gammazero/deque), so both
//	enqueue and dequeue are O(1) amortised.
//
// Visit marking
//
//	MarkOnEnqueue (default) marks a node visited when it is first scheduled.
//	Each node enters the frontier at most once.
//
//	MarkOnDequeue marks a node visited when it is expanded. A node reached by
//	several predecessors in the same layer may sit in the frontier more than
//	once; stale copies are discarded when dequeued. Results are identical in
//	length, the frontier is just larger.
//
// Determinism
//
//	Neighbors are enqueued in the order the Neighborer returns them, so a
//	Neighborer with a stable order yields a reproducible traversal.
//
// Complexity (V = nodes reached, E = edges examined)
//
//   - Time:   O(V + E)
//   - Memory: O(V) under MarkOnEnqueue, O(E) worst case under MarkOnDequeue.
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrOptionViolation  for an invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath           from Result.PathTo when dest was not reached.
//   - ctx.Err()           when the context is cancelled.
//   - Wrapped errors returned by OnVisit.
package bfs
