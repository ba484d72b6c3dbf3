// Package knight builds the knight-move graph of the 8×8 board and answers
// shortest-path queries over it.
//
// What:
//
//   - NewGraph enumerates the 64 squares and links every pair one knight move
//     apart ((±2,±1) or (±1,±2)). The relation is symmetric; corners have 2
//     neighbors, central squares 8, and the board holds 168 edges.
//   - Neighbors, Degree and CanReach expose the adjacency relation.
//   - ShortestPath runs breadth-first search (package bfs) and returns a Path:
//     [start] when start == end, the empty Path when no route exists.
//   - Distances returns the move count from one square to every other.
//
// Immutability:
//
//	A Graph is never mutated after NewGraph returns. All methods are safe for
//	concurrent use; each query keeps its own BFS state.
//
// Determinism:
//
//	Neighbors are kept sorted by Square.Key, so BFS expands them in the same
//	order every time and ShortestPath always returns the same route.
//
// Complexity:
//
//   - NewGraph:     O(64×8).
//   - Neighbors:    O(d), d ≤ 8.
//   - CanReach:     O(1).
//   - ShortestPath: O(V + E) = O(64 + 168), bounded by 64 expansions.
package knight
