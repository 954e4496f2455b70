package constraint

import (
	"testing"

	"github.com/they4kman/gosweep/game"
	rng "github.com/they4kman/gosweep/random"
)

func loadBoard(t *testing.T, layout string) *game.Board {
	t.Helper()
	board, err := game.Layout{Board: layout}.CreateBoard(false)
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	return board
}

func TestFlagsForcedMine(t *testing.T) {
	// The 1 at (1, 0) has a single hidden neighbor.
	board := loadBoard(t, "O..")

	director := New(rng.New(1))
	director.Init(board)

	move, ok := director.Act()
	if !ok {
		t.Fatalf("expected a move")
	}
	if move != (game.Move{Pos: game.Pos(0, 0), Action: game.RightClick}) {
		t.Errorf("expected flag on (0, 0), got %v", move)
	}
}

func TestChordsSatisfiedNumber(t *testing.T) {
	board := loadBoard(t, "F##\n#.#\n###")

	director := New(rng.New(1))
	director.Init(board)

	move, ok := director.Act()
	if !ok {
		t.Fatalf("expected a move")
	}
	if move != (game.Move{Pos: game.Pos(1, 1), Action: game.MiddleClick}) {
		t.Errorf("expected chord on (1, 1), got %v", move)
	}

	if _, err := board.Apply(move); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !board.IsWon() {
		t.Errorf("expected chord to win the board")
	}
}

func TestDropsStaleMoves(t *testing.T) {
	board := loadBoard(t, "O..")

	director := New(rng.New(1))
	director.Init(board)
	director.observe()

	if err := board.ToggleFlag(game.Pos(0, 0)); err != nil {
		t.Fatalf("ToggleFlag: %v", err)
	}

	// The queued flag is stale; with every cell accounted for nothing is left.
	if move, ok := director.Act(); ok {
		t.Errorf("expected no move, got %v", move)
	}
}

func TestFallsBackToRandom(t *testing.T) {
	board, err := game.NewWithMines(3, 3, []game.Position{game.Pos(0, 0)})
	if err != nil {
		t.Fatalf("NewWithMines: %v", err)
	}

	director := New(rng.New(3))
	director.Init(board)

	move, ok := director.Act()
	if !ok || move.Action != game.Click {
		t.Errorf("expected a random click, got %v (%v)", move, ok)
	}
}
