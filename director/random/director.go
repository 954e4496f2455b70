package random

import (
	"github.com/they4kman/gosweep/game"
	rng "github.com/they4kman/gosweep/random"
)

// Director clicks hidden, unflagged cells in a shuffled order.
type Director struct {
	board     *game.Board
	cells     []game.Position
	generator *rng.Generator
}

// New returns a Director shuffling with generator, or with a clock-seeded
// generator when nil.
func New(generator *rng.Generator) *Director {
	if generator == nil {
		generator = rng.Default()
	}
	return &Director{generator: generator}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.cells = make([]game.Position, 0, board.NumCells())
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			director.cells = append(director.cells, game.Pos(x, y))
		}
	}

	director.generator.Shuffle(len(director.cells), func(i, j int) {
		director.cells[i], director.cells[j] = director.cells[j], director.cells[i]
	})
}

func (director *Director) Act() (game.Move, bool) {
	for _, pos := range director.cells {
		if !director.board.IsOpen(pos) && !director.board.IsFlagged(pos) {
			return game.Move{Pos: pos, Action: game.Click}, true
		}
	}
	return game.Move{}, false
}
