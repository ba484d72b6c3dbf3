// Package commands implements the knightpath command tree.
//
//	knightpath path <from> <to> [--board]
//	knightpath moves [square]
//	knightpath reach <from> <to>
//	knightpath table <from>
//	knightpath serve
//
// Squares are given as "r,c" (zero-based) or in algebraic notation ("e4").
package commands
