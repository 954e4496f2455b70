// Package director drives boards with automated players.
package director

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/gosweep/game"
)

type Stats struct {
	Moves int
	State game.BoardState
}

// Player applies the moves chosen by a Director until the game ends, the
// director gives up, or MaxMoves is reached. MaxMoves <= 0 means no limit.
type Player struct {
	Director game.Director
	MaxMoves int
	Log      logrus.FieldLogger
}

func (player Player) Play(board *game.Board) (Stats, error) {
	log := player.Log
	if log == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		log = discard
	}

	player.Director.Init(board)

	stats := Stats{State: board.State()}
	for stats.State == game.Ongoing {
		if player.MaxMoves > 0 && stats.Moves >= player.MaxMoves {
			log.WithField("moves", stats.Moves).Warn("move limit reached")
			break
		}

		move, ok := player.Director.Act()
		if !ok {
			break
		}

		result, err := board.Apply(move)
		if err != nil {
			return stats, err
		}
		stats.Moves++
		stats.State = board.State()

		log.WithFields(logrus.Fields{
			"move":     move.String(),
			"outcome":  result.Outcome.String(),
			"revealed": len(result.Revealed),
		}).Debug("director moved")
	}

	log.WithFields(logrus.Fields{
		"moves": stats.Moves,
		"state": stats.State.String(),
	}).Info("director finished")

	return stats, nil
}
