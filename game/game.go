package game

import (
	"github.com/sirupsen/logrus"

	"github.com/they4kman/gosweep/random"
)

type GameConfig struct {
	Width, Height int
	NumMines      int

	// Seed for mine placement; 0 picks one from the clock
	Seed int64

	// Layout to load board configuration from
	Layout *Layout
	// Whether to set all cells as unrevealed when loading the Layout
	LoadLayoutFresh bool

	Logger logrus.FieldLogger
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:           30,
		Height:          16,
		NumMines:        99,
		LoadLayoutFresh: true,
	}
}

// CreateBoard builds the board described by the config.
func (config GameConfig) CreateBoard() (*Board, error) {
	opts := []Option{}
	if config.Logger != nil {
		opts = append(opts, WithLogger(config.Logger))
	}

	if config.Layout != nil {
		return config.Layout.CreateBoard(config.LoadLayoutFresh, opts...)
	}

	generator := random.Default()
	if config.Seed != 0 {
		generator = random.New(config.Seed)
	}
	opts = append(opts, WithGenerator(generator))

	return New(config.Width, config.Height, config.NumMines, opts...)
}
