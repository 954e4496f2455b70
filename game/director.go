package game

// Director plays a board by choosing one move at a time.
type Director interface {
	// Init prepares the director to play board.
	Init(*Board)

	// Act returns the next move, or false when the director has nothing left
	// to do.
	Act() (Move, bool)
}
