package game

// Snapshot is a read-only view of a board for presentation. Cells is indexed
// [y][x].
type Snapshot struct {
	Width, Height  int
	Cells          [][]CellState
	Lost, Won      bool
	MinesRemaining int
}

func (snapshot Snapshot) At(pos Position) CellState {
	return snapshot.Cells[pos.Y][pos.X]
}

// Snapshot captures the displayed state of every cell, row by row.
func (board *Board) Snapshot() Snapshot {
	cells := make([][]CellState, board.height)
	for y := range cells {
		row := make([]CellState, board.width)
		for x := range row {
			row[x] = board.CellState(Pos(x, y))
		}
		cells[y] = row
	}

	return Snapshot{
		Width:          board.width,
		Height:         board.height,
		Cells:          cells,
		Lost:           board.lost,
		Won:            board.IsWon(),
		MinesRemaining: board.MinesRemaining(),
	}
}

// CellState reports how the cell at pos should be displayed. Hidden mines are
// only exposed once the game is lost.
func (board *Board) CellState(pos Position) CellState {
	isMine := board.mines.Contains(pos)

	if !board.open.Contains(pos) {
		switch {
		case board.lost && isMine:
			return MineUnrevealed
		case board.flagged.Contains(pos):
			return Flag
		default:
			return Unrevealed
		}
	}

	if isMine {
		return MineLosing
	}
	return CellState(board.NeighboringMines(pos))
}
