package knight

import (
	"strings"

	"github.com/katalvlaran/knightpath/board"
)

// Path is an ordered sequence of squares where each consecutive pair is one
// knight move apart. A single-square Path means start == end; the empty Path
// means no route exists.
type Path []board.Square

// Found reports whether the path is non-empty.
func (p Path) Found() bool {
	return len(p) > 0
}

// Moves returns the number of knight moves, len(p)-1, or 0 for the empty path.
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Start returns the first square, or false if the path is empty.
func (p Path) Start() (board.Square, bool) {
	if len(p) == 0 {
		return board.Square{}, false
	}

	return p[0], true
}

// End returns the last square, or false if the path is empty.
func (p Path) End() (board.Square, bool) {
	if len(p) == 0 {
		return board.Square{}, false
	}

	return p[len(p)-1], true
}

// Valid reports whether every consecutive pair of p is adjacent in g.
// The empty and single-square paths are valid.
func (p Path) Valid(g *Graph) bool {
	for i := 1; i < len(p); i++ {
		if !g.CanReach(p[i-1], p[i]) {
			return false
		}
	}

	return true
}

// String renders the path as "(0,0) -> (1,2)".
func (p Path) String() string {
	var sb strings.Builder
	for i, sq := range p {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString("(" + sq.String() + ")")
	}

	return sb.String()
}
