package board

import (
	"fmt"
	"strconv"
	"strings"
)

// InBounds reports whether (row, column) lies on the board.
// Complexity: O(1).
func InBounds(row, column int) bool {
	return row >= 0 && row < Size && column >= 0 && column < Size
}

// New returns the square at (row, column).
// Returns ErrOutOfBounds if either coordinate is outside [0,7].
func New(row, column int) (Square, error) {
	if !InBounds(row, column) {
		return Square{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, column)
	}

	return Square{row: uint8(row), col: uint8(column)}, nil
}

// MustNew is like New but panics on invalid coordinates.
// Intended for literals and tests.
func MustNew(row, column int) Square {
	sq, err := New(row, column)
	if err != nil {
		panic(err)
	}

	return sq
}

// FromKey converts a row-major key (row*8+column) back to a Square.
// Returns ErrOutOfBounds for keys outside [0,63].
func FromKey(key int) (Square, error) {
	if key < 0 || key >= Cells {
		return Square{}, fmt.Errorf("%w: key %d", ErrOutOfBounds, key)
	}

	return Square{row: uint8(key / Size), col: uint8(key % Size)}, nil
}

// All returns the 64 squares in ascending key order.
func All() []Square {
	out := make([]Square, 0, Cells)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out = append(out, Square{row: uint8(r), col: uint8(c)})
		}
	}

	return out
}

// Row returns the row index in [0,7].
func (s Square) Row() int { return int(s.row) }

// Column returns the column index in [0,7].
func (s Square) Column() int { return int(s.col) }

// Key returns the canonical row-major ordinal row*8+column.
// Two squares are interchangeable iff their keys are equal.
func (s Square) Key() int {
	return int(s.row)*Size + int(s.col)
}

// Offset returns the square displaced by (dr, dc) and true,
// or the zero Square and false if the target leaves the board.
func (s Square) Offset(dr, dc int) (Square, bool) {
	r, c := int(s.row)+dr, int(s.col)+dc
	if !InBounds(r, c) {
		return Square{}, false
	}

	return Square{row: uint8(r), col: uint8(c)}, true
}

// String formats the square as "row,column", e.g. "0,0".
func (s Square) String() string {
	return strconv.Itoa(int(s.row)) + "," + strconv.Itoa(int(s.col))
}

// Algebraic formats the square in chess notation: the column selects the
// file a..h and the row selects the rank 1..8, so (0,0) is "a1".
func (s Square) Algebraic() string {
	return string([]byte{'a' + s.col, '1' + s.row})
}

// Parse reads a square label. Accepted forms:
//
//	"r,c" or "(r,c)"   zero-based row and column, spaces allowed
//	"e4"               algebraic file+rank, case-insensitive
//
// An algebraic label must be a file a-h followed by a rank 1-8; anything
// else, including "i1" or "a9", is ErrBadLabel. ErrOutOfBounds is reserved
// for well-formed "r,c" labels whose numbers fall outside [0,7].
func Parse(label string) (Square, error) {
	s := strings.TrimSpace(label)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")

	if rs, cs, ok := strings.Cut(s, ","); ok {
		r, errR := strconv.Atoi(strings.TrimSpace(rs))
		c, errC := strconv.Atoi(strings.TrimSpace(cs))
		if errR != nil || errC != nil {
			return Square{}, fmt.Errorf("%w: %q", ErrBadLabel, label)
		}

		return New(r, c)
	}

	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}
	file := strings.ToLower(s[:1])[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}

	return New(int(rank)-'1', int(file)-'a')
}
