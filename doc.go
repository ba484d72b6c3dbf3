// Package knightpath finds shortest knight paths on a standard 8×8 chessboard.
//
// What is knightpath?
//
//	A small, dependency-light library plus CLI and HTTP service:
//		• board/  immutable Square values, bounds checks, label parsing
//		• bfs/    generic breadth-first search with hooks and visit policies
//		• knight/ the knight-move graph and its shortest-path queries
//
// Quick example:
//
//	g := knight.NewGraph()
//	p, _ := g.ShortestPath(board.MustNew(0, 0), board.MustNew(7, 7))
//	fmt.Println(p.Moves(), p) // 6 (0,0) -> (1,2) -> ... -> (7,7)
//
// The command-line front end lives in cmd/knightpath:
//
//	go install github.com/katalvlaran/knightpath/cmd/knightpath@latest
//	knightpath path a1 h8 --notation algebraic --board
package knightpath
