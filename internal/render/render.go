// Package render formats knight paths, neighbor lists and distance tables
// for the terminal using lipgloss styles. Output written to a non-terminal
// carries no escape codes.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/knight"
)

// Notation selects how squares are labelled.
type Notation int

const (
	// Coords prints zero-based "(row,column)" labels.
	Coords Notation = iota
	// Algebraic prints chess labels such as "e4".
	Algebraic
)

// ParseNotation maps "coords" or "algebraic" to a Notation.
func ParseNotation(s string) (Notation, error) {
	switch s {
	case "coords", "":
		return Coords, nil
	case "algebraic":
		return Algebraic, nil
	default:
		return Coords, fmt.Errorf("render: unknown notation %q", s)
	}
}

// Label formats sq in notation n.
func (n Notation) Label(sq board.Square) string {
	if n == Algebraic {
		return sq.Algebraic()
	}
	return "(" + sq.String() + ")"
}

// Renderer holds styles bound to one output.
type Renderer struct {
	notation Notation

	title  lipgloss.Style
	square lipgloss.Style
	accent lipgloss.Style
	muted  lipgloss.Style
}

// New returns a Renderer whose color profile is detected from w.
func New(w io.Writer, n Notation) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		notation: n,
		title:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		square:   lr.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		accent:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		muted:    lr.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// Label formats sq in the renderer's notation.
func (r *Renderer) Label(sq board.Square) string {
	return r.notation.Label(sq)
}

// Path renders the move count followed by one square per line.
func (r *Renderer) Path(p knight.Path) string {
	if !p.Found() {
		return r.title.Render("No path found.") + "\n"
	}
	n := p.Moves()
	plural := "s"
	if n == 1 {
		plural = ""
	}

	var sb strings.Builder
	sb.WriteString(r.title.Render(fmt.Sprintf("You made it in %d move%s! Here's your path:", n, plural)))
	sb.WriteByte('\n')
	for _, sq := range p {
		sb.WriteString(r.square.Render(r.Label(sq)))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Neighbors renders "sq -> n1, n2, ...".
func (r *Renderer) Neighbors(sq board.Square, nbrs []board.Square) string {
	labels := make([]string, len(nbrs))
	for i, n := range nbrs {
		labels[i] = r.square.Render(r.Label(n))
	}

	return r.title.Render(r.Label(sq)) + " -> " + strings.Join(labels, ", ") + "\n"
}

// Adjacency renders the neighbor list of every square in key order.
func (r *Renderer) Adjacency(g *knight.Graph) string {
	var sb strings.Builder
	for _, sq := range g.Squares() {
		sb.WriteString(r.Neighbors(sq, g.Neighbors(sq)))
	}

	return sb.String()
}

// Board draws the board with rank 8 on top, marking each path square with its
// step number and every other square with a dot.
func (r *Renderer) Board(p knight.Path) string {
	step := make(map[board.Square]int, len(p))
	for i, sq := range p {
		step[sq] = i
	}

	return r.grid(func(sq board.Square) string {
		if i, ok := step[sq]; ok {
			return r.accent.Render(strconv.Itoa(i))
		}
		return r.muted.Render(".")
	})
}

// Distances draws the move count from start to every square.
func (r *Renderer) Distances(start board.Square, dist map[board.Square]int) string {
	return r.title.Render("Moves from "+r.Label(start)+":") + "\n" + r.grid(func(sq board.Square) string {
		d, ok := dist[sq]
		if !ok {
			return r.muted.Render("-")
		}
		if sq == start {
			return r.accent.Render(strconv.Itoa(d))
		}
		return strconv.Itoa(d)
	})
}

// grid lays out one cell per square, rank 8 first, with file and rank labels.
func (r *Renderer) grid(cell func(board.Square) string) string {
	var sb strings.Builder
	for row := board.Size - 1; row >= 0; row-- {
		sb.WriteString(r.muted.Render(strconv.Itoa(row + 1)))
		for col := 0; col < board.Size; col++ {
			sb.WriteByte(' ')
			sb.WriteString(cell(board.MustNew(row, col)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for col := 0; col < board.Size; col++ {
		sb.WriteString(" " + r.muted.Render(string(rune('a'+col))))
	}
	sb.WriteByte('\n')

	return sb.String()
}
