package core

// BoardCell is one occupied cell of a game board.
type BoardCell struct {
	Pos   Point
	Color Color
}

// Board is a grid-level view of a game, independent of terminal layout.
// Cells later in the slice are drawn over earlier ones.
type Board struct {
	Width  int
	Height int
	Cells  []BoardCell
}
