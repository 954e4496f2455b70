package constraint

import (
	"github.com/gammazero/deque"

	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
	rng "github.com/they4kman/gosweep/random"
	"github.com/they4kman/gosweep/util/collections"
)

// Director plays deliberate moves first: it flags cells that must be mines and
// chords numbers whose mines are all flagged. When nothing can be deduced it
// falls back to a random click.
type Director struct {
	board    *game.Board
	fallback *random.Director

	pending deque.Deque[game.Move]
	queued  collections.Set[game.Move]
}

func New(generator *rng.Generator) *Director {
	return &Director{fallback: random.New(generator)}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.fallback.Init(board)
	director.pending.Clear()
	director.queued = collections.NewSet[game.Move]()
}

func (director *Director) Act() (game.Move, bool) {
	if move, ok := director.nextPending(); ok {
		return move, true
	}

	director.observe()
	if move, ok := director.nextPending(); ok {
		return move, true
	}

	return director.fallback.Act()
}

func (director *Director) nextPending() (game.Move, bool) {
	for director.pending.Len() > 0 {
		move := director.pending.PopFront()
		director.queued.Remove(move)

		if director.isUseful(move) {
			return move, true
		}
	}
	return game.Move{}, false
}

// isUseful drops queued moves made stale by earlier ones, e.g. a flag on a
// cell a chord has since opened.
func (director *Director) isUseful(move game.Move) bool {
	board := director.board
	switch move.Action {
	case game.RightClick:
		return !board.IsOpen(move.Pos) && !board.IsFlagged(move.Pos)
	case game.MiddleClick:
		numMines, ok := board.CellState(move.Pos).Count()
		hidden, numFlags := director.neighborsOf(move.Pos)
		return ok && numFlags == numMines && len(hidden) > 0
	}
	return false
}

func (director *Director) enqueue(move game.Move) {
	if director.queued.Contains(move) {
		return
	}
	director.queued.Add(move)
	director.pending.PushBack(move)
}

func (director *Director) observe() {
	board := director.board
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			pos := game.Pos(x, y)
			numMines, ok := board.CellState(pos).Count()
			if !ok || numMines == 0 {
				continue
			}

			hidden, numFlags := director.neighborsOf(pos)
			if len(hidden) == 0 {
				continue
			}

			switch {
			case numFlags == numMines:
				director.enqueue(game.Move{Pos: pos, Action: game.MiddleClick})
			case numFlags+len(hidden) == numMines:
				for _, cell := range hidden {
					director.enqueue(game.Move{Pos: cell, Action: game.RightClick})
				}
			}
		}
	}
}

// neighborsOf returns the hidden unflagged neighbors of pos, along with the
// number of flagged ones.
func (director *Director) neighborsOf(pos game.Position) ([]game.Position, int) {
	var hidden []game.Position
	numFlags := 0
	for _, neighbor := range director.board.Neighbors(pos) {
		switch {
		case director.board.IsFlagged(neighbor):
			numFlags++
		case !director.board.IsOpen(neighbor):
			hidden = append(hidden, neighbor)
		}
	}
	return hidden, numFlags
}
