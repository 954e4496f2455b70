package game

import (
	"fmt"

	"github.com/pkg/errors"
)

type Action int

const (
	// Click opens a cell
	Click Action = iota
	// RightClick toggles the flag on a cell
	RightClick
	// MiddleClick chords an open cell
	MiddleClick
)

func (action Action) String() string {
	switch action {
	case Click:
		return "click"
	case RightClick:
		return "right-click"
	case MiddleClick:
		return "middle-click"
	}
	return fmt.Sprintf("Action(%d)", int(action))
}

// Move is a single action on a single cell.
type Move struct {
	Pos    Position
	Action Action
}

func (move Move) String() string {
	return fmt.Sprintf("%s %v", move.Action, move.Pos)
}

// Apply performs the move on the board. A middle click on a hidden cell does
// nothing.
func (board *Board) Apply(move Move) (OpenResult, error) {
	switch move.Action {
	case Click:
		return board.Open(move.Pos)
	case RightClick:
		return OpenResult{}, board.ToggleFlag(move.Pos)
	case MiddleClick:
		if !board.Contains(move.Pos) {
			return OpenResult{}, errors.Wrapf(ErrOutOfBounds, "chord %v", move.Pos)
		}
		if !board.open.Contains(move.Pos) {
			return OpenResult{}, nil
		}
		return board.Open(move.Pos)
	}
	return OpenResult{}, errors.Errorf("unknown action %v", move.Action)
}
