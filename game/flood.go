package game

import (
	"github.com/gammazero/deque"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Outcome int

const (
	// NoOutcome is reported when the call did not open the requested cell
	// itself: it was flagged, the game was already lost, or the cell was
	// already open (chording).
	NoOutcome Outcome = iota
	// Safe means the requested cell was opened and holds no mine.
	Safe
	// MineHit means the requested cell held a mine and the game is lost.
	MineHit
)

func (outcome Outcome) String() string {
	switch outcome {
	case Safe:
		return "safe"
	case MineHit:
		return "mine"
	default:
		return "none"
	}
}

type OpenResult struct {
	Outcome Outcome
	// NeighboringMines of the opened cell; only meaningful for Safe.
	NeighboringMines int
	// Revealed lists every cell opened by the call, in reveal order.
	Revealed []Position
}

// Open reveals the cell at pos.
//
// Opening a cell with no neighboring mines cascades to its neighbors until the
// region is bordered by numbered cells. Opening a cell that is already open
// chords: when its number equals the flags around it, every unflagged hidden
// neighbor is opened as well.
func (board *Board) Open(pos Position) (OpenResult, error) {
	if !board.Contains(pos) {
		return OpenResult{}, errors.Wrapf(ErrOutOfBounds, "open %v", pos)
	}

	if board.open.Contains(pos) {
		return OpenResult{Revealed: board.chord(pos)}, nil
	}

	if board.lost || board.flagged.Contains(pos) {
		return OpenResult{}, nil
	}

	result := OpenResult{Revealed: board.reveal(pos)}
	if board.mines.Contains(pos) {
		result.Outcome = MineHit
	} else {
		result.Outcome = Safe
		result.NeighboringMines = board.NeighboringMines(pos)
	}

	if len(result.Revealed) > 1 {
		board.log.WithFields(logrus.Fields{
			"x":        pos.X,
			"y":        pos.Y,
			"revealed": len(result.Revealed),
		}).Debug("flood filled")
	}
	board.logIfWon()

	return result, nil
}

func (board *Board) chord(pos Position) []Position {
	if board.NeighboringMines(pos) != board.neighboringFlags(pos) {
		return nil
	}

	var targets []Position
	for _, neighbor := range board.Neighbors(pos) {
		if !board.flagged.Contains(neighbor) && !board.open.Contains(neighbor) {
			targets = append(targets, neighbor)
		}
	}
	if len(targets) == 0 {
		return nil
	}

	// Each target floods completely before the next one opens, so a mine left
	// under a wrong flag only stops the targets after it.
	var revealed []Position
	for _, target := range targets {
		if board.lost {
			break
		}
		revealed = append(revealed, board.reveal(target)...)
	}
	board.log.WithFields(logrus.Fields{
		"x":        pos.X,
		"y":        pos.Y,
		"revealed": len(revealed),
	}).Debug("chorded")
	board.logIfWon()

	return revealed
}

// reveal opens start and floods outward from each opened cell with no
// neighboring mines. Open and flagged cells are skipped; a mine stops the walk.
func (board *Board) reveal(start Position) []Position {
	var queue deque.Deque[Position]
	queue.PushBack(start)

	var revealed []Position
	for queue.Len() > 0 && !board.lost {
		pos := queue.PopFront()
		if board.open.Contains(pos) || board.flagged.Contains(pos) {
			continue
		}

		board.open.Add(pos)
		revealed = append(revealed, pos)

		if board.mines.Contains(pos) {
			board.lose(pos)
			break
		}

		if board.NeighboringMines(pos) == 0 {
			for _, neighbor := range board.Neighbors(pos) {
				if !board.open.Contains(neighbor) {
					queue.PushBack(neighbor)
				}
			}
		}
	}

	return revealed
}
