package game

import "testing"

func TestSnapshotStates(t *testing.T) {
	// O#O
	// ###
	// ###
	board := mustBoard(t, 3, 3, Pos(0, 0), Pos(2, 0))

	snapshot := board.Snapshot()
	if snapshot.Width != 3 || snapshot.Height != 3 || len(snapshot.Cells) != 3 {
		t.Fatalf("unexpected dimensions %dx%d", snapshot.Width, snapshot.Height)
	}
	for y, row := range snapshot.Cells {
		for x, state := range row {
			if state != Unrevealed {
				t.Errorf("(%d, %d): expected unrevealed, got %v", x, y, state)
			}
		}
	}

	mustOpen(t, board, Pos(1, 1))
	mustFlag(t, board, Pos(0, 2))
	mustFlag(t, board, Pos(2, 0))

	snapshot = board.Snapshot()
	tests := []struct {
		pos      Position
		expected CellState
	}{
		{Pos(1, 1), Number2},
		{Pos(0, 2), Flag},
		{Pos(2, 0), Flag},
		{Pos(0, 0), Unrevealed},
	}
	for _, tt := range tests {
		if state := snapshot.At(tt.pos); state != tt.expected {
			t.Errorf("%v: expected %v, got %v", tt.pos, tt.expected, state)
		}
	}
	if snapshot.MinesRemaining != 0 || snapshot.Lost || snapshot.Won {
		t.Errorf("unexpected snapshot summary %+v", snapshot)
	}
}

func TestSnapshotAfterLoss(t *testing.T) {
	board := mustBoard(t, 3, 3, Pos(0, 0), Pos(2, 0))
	mustFlag(t, board, Pos(2, 0))
	mustFlag(t, board, Pos(2, 2))
	mustOpen(t, board, Pos(0, 0))

	snapshot := board.Snapshot()
	tests := []struct {
		pos      Position
		expected CellState
	}{
		{Pos(0, 0), MineLosing},
		{Pos(2, 0), MineUnrevealed},
		{Pos(2, 2), Flag},
		{Pos(1, 1), Unrevealed},
	}
	for _, tt := range tests {
		if state := snapshot.At(tt.pos); state != tt.expected {
			t.Errorf("%v: expected %v, got %v", tt.pos, tt.expected, state)
		}
	}
	if !snapshot.Lost || snapshot.Won {
		t.Errorf("expected lost snapshot")
	}
}

func TestSnapshotEmptyCells(t *testing.T) {
	board := mustBoard(t, 3, 1, Pos(2, 0))
	mustOpen(t, board, Pos(0, 0))

	snapshot := board.Snapshot()
	if snapshot.At(Pos(0, 0)) != Empty || snapshot.At(Pos(1, 0)) != Number1 {
		t.Errorf("unexpected row %v", snapshot.Cells[0])
	}
}

func TestCellStateCount(t *testing.T) {
	for _, state := range CellStates {
		count, ok := state.Count()
		switch state {
		case Unrevealed, Flag, MineUnrevealed, MineLosing:
			if ok {
				t.Errorf("%v must not carry a count", state)
			}
		default:
			if !ok || count != int(state) {
				t.Errorf("%v: expected count %d, got %d (%v)", state, int(state), count, ok)
			}
		}
	}

	if Empty.String() != "empty" || Number3.String() != "number3" || MineLosing.String() != "mine_losing" {
		t.Errorf("unexpected names %v %v %v", Empty, Number3, MineLosing)
	}
}
