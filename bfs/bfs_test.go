package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightpath/bfs"
)

// adj is a minimal adjacency-list graph keyed by string.
type adj map[string][]string

func (a adj) Neighbors(n string) []string { return a[n] }

// undirected builds an adj from an edge list, adding both directions.
func undirected(edges ...[2]string) adj {
	g := adj{}
	for _, e := range edges {
		g[e[0]] = append(g[e[0]], e[1])
		g[e[1]] = append(g[e[1]], e[0])
	}

	return g
}

// chain returns v0–v1–…–vn.
func chain(n int) adj {
	edges := make([][2]string, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]string{fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1)})
	}

	return undirected(edges...)
}

// diamond is A→{B,C}→D: D is reachable from two predecessors at depth 1.
func diamond() adj {
	return undirected([2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"}, [2]string{"C", "D"})
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search[string](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.Path[string](nil, "A", "B")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.Search(adj{"A": {}}, "A", bfs.WithMaxDepth[string](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Search(adj{"A": {}}, "A", bfs.WithVisitPolicy[string](bfs.VisitPolicy(7)))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestSearch_SingleNode covers the trivial one-node graph.
func TestSearch_SingleNode(t *testing.T) {
	res, err := bfs.Search(adj{"A": {}}, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Empty(t, res.Parent)
}

// TestSearch_CycleDepths covers a 4-cycle and checks layer depths.
func TestSearch_CycleDepths(t *testing.T) {
	g := undirected([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})
	res, err := bfs.Search(g, "A")
	require.NoError(t, err)

	require.Len(t, res.Order, 4)
	assert.Equal(t, "A", res.Order[0])
	assert.ElementsMatch(t, []string{"B", "D"}, res.Order[1:3])
	assert.Equal(t, "C", res.Order[3])

	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
}

// TestSearch_Disconnected ensures only the start's component is explored.
func TestSearch_Disconnected(t *testing.T) {
	g := undirected([2]string{"X", "Y"}, [2]string{"P", "Q"})

	resX, err := bfs.Search(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, resX.Order)

	_, err = resX.PathTo("Q")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestSearch_MaxDepth verifies positive, zero (no limit) and large limits.
func TestSearch_MaxDepth(t *testing.T) {
	g := chain(2)
	for _, tc := range []struct {
		depth int
		want  []string
	}{
		{1, []string{"v0", "v1"}},
		{0, []string{"v0", "v1", "v2"}},
		{10, []string{"v0", "v1", "v2"}},
	} {
		res, err := bfs.Search(g, "v0", bfs.WithMaxDepth[string](tc.depth))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Order, "MaxDepth=%d", tc.depth)
	}
}

// TestSearch_FilterNeighbor shows how filtering prunes an edge.
func TestSearch_FilterNeighbor(t *testing.T) {
	res, err := bfs.Search(chain(2), "v0",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "v1" && nbr == "v2")
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1"}, res.Order)
}

// TestSearch_Hooks asserts that hooks fire in the expected sequence.
func TestSearch_Hooks(t *testing.T) {
	var enq, deq, vis []string
	entry := func(id string, d int) string { return id + "@" + strconv.Itoa(d) }

	_, err := bfs.Search(chain(2), "v0",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, entry(id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, entry(id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, entry(id, d)); return nil }),
	)
	require.NoError(t, err)

	want := []string{"v0@0", "v1@1", "v2@2"}
	assert.Equal(t, want, enq)
	assert.Equal(t, want, deq)
	assert.Equal(t, want, vis)
}

// TestSearch_OnVisitAbort checks that a hook error stops the search and is wrapped.
func TestSearch_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop here")
	var seen []string
	_, err := bfs.Search(chain(5), "v0",
		bfs.WithOnVisit(func(id string, _ int) error {
			seen = append(seen, id)
			if id == "v2" {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	assert.Contains(t, err.Error(), "v2")
	assert.Equal(t, []string{"v0", "v1", "v2"}, seen)
}

// TestSearch_Cancellation verifies that a cancelled context halts BFS.
func TestSearch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Search(chain(100), "v0", bfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = bfs.Path(chain(100), "v0", "v100", bfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestPathTo covers start→start and a multi-hop reconstruction.
func TestPathTo(t *testing.T) {
	res, err := bfs.Search(chain(3), "v0")
	require.NoError(t, err)

	p, err := res.PathTo("v0")
	require.NoError(t, err)
	assert.Equal(t, []string{"v0"}, p)

	p, err = res.PathTo("v3")
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2", "v3"}, p)

	_, err = res.PathTo("missing")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no path"))
}

// TestPath_Trivial returns [start] without touching the graph.
func TestPath_Trivial(t *testing.T) {
	calls := 0
	p, err := bfs.Path(adj{}, "S", "S",
		bfs.WithOnEnqueue(func(string, int) { calls++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"S"}, p)
	assert.Zero(t, calls)
}

// TestPath_Unreachable returns a nil path and nil error.
func TestPath_Unreachable(t *testing.T) {
	g := undirected([2]string{"X", "Y"}, [2]string{"P", "Q"})
	p, err := bfs.Path(g, "X", "Q")
	require.NoError(t, err)
	assert.Nil(t, p)

	// pruned by depth
	p, err = bfs.Path(chain(4), "v0", "v4", bfs.WithMaxDepth[string](2))
	require.NoError(t, err)
	assert.Nil(t, p)
}

// TestPath_Shortest picks the 3-hop route over the 4-hop route.
func TestPath_Shortest(t *testing.T) {
	g := undirected(
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "K"},
		[2]string{"A", "E"}, [2]string{"E", "F"}, [2]string{"F", "K"},
	)
	for _, p := range []bfs.VisitPolicy{bfs.MarkOnEnqueue, bfs.MarkOnDequeue} {
		path, err := bfs.Path(g, "A", "K", bfs.WithVisitPolicy[string](p))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "E", "F", "K"}, path, "policy %s", p)
	}
}

// TestPath_StopsAtGoal ensures nodes beyond the goal's layer are not expanded.
func TestPath_StopsAtGoal(t *testing.T) {
	var visited []string
	_, err := bfs.Path(chain(10), "v0", "v2",
		bfs.WithOnVisit(func(id string, _ int) error { visited = append(visited, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, visited)
}

// TestVisitPolicy_Duplicates shows that MarkOnDequeue schedules D twice in a
// diamond while MarkOnEnqueue schedules it once; both visit it once.
func TestVisitPolicy_Duplicates(t *testing.T) {
	count := func(p bfs.VisitPolicy) (enqueued, visited int) {
		res, err := bfs.Search(diamond(), "A",
			bfs.WithVisitPolicy[string](p),
			bfs.WithOnEnqueue(func(id string, _ int) {
				if id == "D" {
					enqueued++
				}
			}),
		)
		require.NoError(t, err)
		for _, id := range res.Order {
			if id == "D" {
				visited++
			}
		}
		assert.Equal(t, 2, res.Depth["D"])
		return enqueued, visited
	}

	e, v := count(bfs.MarkOnEnqueue)
	assert.Equal(t, 1, e)
	assert.Equal(t, 1, v)

	e, v = count(bfs.MarkOnDequeue)
	assert.Equal(t, 2, e)
	assert.Equal(t, 1, v)
}

// TestParseVisitPolicy covers the textual forms.
func TestParseVisitPolicy(t *testing.T) {
	p, err := bfs.ParseVisitPolicy("dequeue")
	require.NoError(t, err)
	assert.Equal(t, bfs.MarkOnDequeue, p)

	p, err = bfs.ParseVisitPolicy("")
	require.NoError(t, err)
	assert.Equal(t, bfs.MarkOnEnqueue, p)
	assert.Equal(t, "enqueue", p.String())

	_, err = bfs.ParseVisitPolicy("sometimes")
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestSearch_ConcurrentSafety ensures concurrent searches on a shared graph do not interfere.
func TestSearch_ConcurrentSafety(t *testing.T) {
	g := chain(50)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			p, err := bfs.Path(g, "v0", "v50")
			if err == nil && len(p) != 51 {
				err = fmt.Errorf("len %d", len(p))
			}
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		assert.NoError(t, <-errs)
	}
}
