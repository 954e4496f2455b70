package game

import "fmt"

type CellState int
type BoardState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	MineUnrevealed
	MineLosing
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	MineUnrevealed,
	MineLosing,
}

// Count returns the neighboring mine count of an opened safe cell, and false
// for every other state.
func (state CellState) Count() (int, bool) {
	if state >= Empty && state <= Number8 {
		return int(state), true
	}
	return 0, false
}

func (state CellState) String() string {
	switch state {
	case Unrevealed:
		return "unrevealed"
	case Flag:
		return "flag"
	case MineUnrevealed:
		return "mine_unrevealed"
	case MineLosing:
		return "mine_losing"
	}
	if count, ok := state.Count(); ok {
		if count == 0 {
			return "empty"
		}
		return fmt.Sprintf("number%d", count)
	}
	return fmt.Sprintf("CellState(%d)", int(state))
}

const (
	Lost BoardState = iota
	Won
	Ongoing
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "ongoing"
	}
}
