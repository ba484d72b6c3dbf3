package knight

import (
	"context"
	"slices"

	"github.com/katalvlaran/knightpath/bfs"
	"github.com/katalvlaran/knightpath/board"
)

// offsets lists the eight knight displacements as (row, column) deltas.
var offsets = [8][2]int{
	{2, 1}, {2, -1}, {1, 2}, {1, -2},
	{-2, 1}, {-2, -1}, {-1, 2}, {-1, -2},
}

// Option configures a single ShortestPath or Distances query.
type Option = bfs.Option[board.Square]

// WithContext attaches a context for cancellation.
func WithContext(ctx context.Context) Option { return bfs.WithContext[board.Square](ctx) }

// WithVisitPolicy selects when BFS marks squares visited.
func WithVisitPolicy(p bfs.VisitPolicy) Option { return bfs.WithVisitPolicy[board.Square](p) }

// WithOnEnqueue registers a hook called whenever a square enters the frontier.
func WithOnEnqueue(fn func(sq board.Square, depth int)) Option {
	return bfs.WithOnEnqueue(fn)
}

// WithOnVisit registers a hook called when a square is expanded.
func WithOnVisit(fn func(sq board.Square, depth int) error) Option {
	return bfs.WithOnVisit(fn)
}

// Graph is the immutable knight-move adjacency relation over all 64 squares.
type Graph struct {
	adjacency map[board.Square]map[board.Square]struct{}
	sorted    [board.Cells][]board.Square
	edges     int
}

// NewGraph constructs the knight graph.
// Every square gets an entry, then each in-bounds knight move is registered
// in both directions.
func NewGraph() *Graph {
	g := &Graph{adjacency: make(map[board.Square]map[board.Square]struct{}, board.Cells)}
	squares := board.All()
	for _, sq := range squares {
		g.adjacency[sq] = make(map[board.Square]struct{}, len(offsets))
	}
	for _, sq := range squares {
		for _, d := range offsets {
			to, ok := sq.Offset(d[0], d[1])
			if !ok {
				continue
			}
			g.addEdge(sq, to)
		}
	}
	for _, sq := range squares {
		nbrs := make([]board.Square, 0, len(g.adjacency[sq]))
		for n := range g.adjacency[sq] {
			nbrs = append(nbrs, n)
		}
		slices.SortFunc(nbrs, func(a, b board.Square) int { return a.Key() - b.Key() })
		g.sorted[sq.Key()] = nbrs
	}

	return g
}

// addEdge links a and b symmetrically. Re-adding an existing edge is a no-op.
func (g *Graph) addEdge(a, b board.Square) {
	if _, ok := g.adjacency[a][b]; ok {
		return
	}
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	g.edges++
}

// Squares returns all squares of the graph in key order.
func (g *Graph) Squares() []board.Square {
	return board.All()
}

// Edges returns the number of undirected edges (168 on an 8×8 board).
func (g *Graph) Edges() int {
	return g.edges
}

// Neighbors returns the squares one knight move from sq, sorted by key.
// The returned slice is a copy owned by the caller.
func (g *Graph) Neighbors(sq board.Square) []board.Square {
	return slices.Clone(g.sorted[sq.Key()])
}

// Degree returns the number of neighbors of sq.
func (g *Graph) Degree(sq board.Square) int {
	return len(g.sorted[sq.Key()])
}

// CanReach reports whether b is exactly one knight move from a.
// CanReach(a, b) == CanReach(b, a) for all squares.
func (g *Graph) CanReach(a, b board.Square) bool {
	_, ok := g.adjacency[a][b]
	return ok
}

// ShortestPath returns a minimum-move Path from start to end.
//
//   - start == end: Path{start}, no search.
//   - otherwise: BFS with early exit when end is dequeued.
//   - end unreachable: empty Path and nil error.
//
// Errors come only from options: a cancelled context, an OnVisit hook error,
// or an invalid Option.
func (g *Graph) ShortestPath(start, end board.Square, opts ...Option) (Path, error) {
	if start == end {
		return Path{start}, nil
	}
	nodes, err := bfs.Path[board.Square](view{g}, start, end, opts...)
	if err != nil {
		return nil, err
	}

	return Path(nodes), nil
}

// Distances returns the minimum number of moves from start to every square.
func (g *Graph) Distances(start board.Square, opts ...Option) (map[board.Square]int, error) {
	res, err := bfs.Search[board.Square](view{g}, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// view adapts Graph to bfs.Neighborer without copying neighbor slices.
type view struct{ g *Graph }

func (v view) Neighbors(sq board.Square) []board.Square {
	return v.g.sorted[sq.Key()]
}
