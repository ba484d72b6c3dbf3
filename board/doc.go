// Package board models the fixed 8×8 chessboard as a set of immutable
// Square values.
//
// What:
//
//   - Square identifies one of the 64 cells by (row, column), both in [0,7].
//   - Square is a comparable value type: use it directly as a map key or
//     compare with ==. Key() exposes the packed row-major ordinal row*8+column.
//   - Parse accepts "r,c", "(r,c)" and algebraic "e4" labels.
//
// Validation:
//
//	Construction fails fast. New, FromKey and Parse return ErrOutOfBounds for
//	coordinates outside the board, and Square has no exported fields, so every
//	Square that exists in a program is on the board. Downstream packages never
//	have to handle an "absent" square.
//
// Complexity:
//
//   - New, FromKey, Key, Offset: O(1).
//   - All: O(64).
//
// Errors:
//
//   - ErrOutOfBounds: row or column outside [0,7].
//   - ErrBadLabel: a label that is neither "r,c" nor algebraic notation.
package board
