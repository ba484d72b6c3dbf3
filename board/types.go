package board

import "errors"

const (
	// Size is the number of rows (and columns) on the board.
	Size = 8
	// Cells is the number of squares on the board.
	Cells = Size * Size
)

// Sentinel errors for square construction and parsing.
var (
	// ErrOutOfBounds indicates a row or column outside [0, Size-1].
	ErrOutOfBounds = errors.New("board: coordinates out of bounds")
	// ErrBadLabel indicates a label that cannot be parsed as a square.
	ErrBadLabel = errors.New("board: malformed square label")
)

// Square is one board position. It is immutable and comparable; two squares
// are equal exactly when their rows and columns are equal.
type Square struct {
	row, col uint8
}
