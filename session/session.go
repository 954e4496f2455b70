// Package session owns running games on behalf of a host. Each Session wraps
// one board and serializes every call on it; a Manager keeps sessions by ID.
package session

import (
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/random"
)

type Config struct {
	Width, Height int
	NumMines      int
	// Seed for mine placement; 0 picks one from the clock
	Seed int64
}

// DefaultConfig is a 10x10 board with between 5 and 14 mines.
func DefaultConfig() (Config, error) {
	numMines, err := random.Range(5, 15)
	if err != nil {
		return Config{}, err
	}
	return Config{Width: 10, Height: 10, NumMines: numMines}, nil
}

func (config Config) createBoard(log logrus.FieldLogger) (*game.Board, error) {
	gameConfig := game.NewGameConfig()
	gameConfig.Width = config.Width
	gameConfig.Height = config.Height
	gameConfig.NumMines = config.NumMines
	gameConfig.Seed = config.Seed
	gameConfig.Logger = log
	return gameConfig.CreateBoard()
}

type Session struct {
	id  string
	log logrus.FieldLogger

	mu    sync.Mutex
	board *game.Board
}

// orDiscard returns log, or a logger that drops everything when log is nil.
func orDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log != nil {
		return log
	}
	discard := logrus.New()
	discard.Out = io.Discard
	return discard
}

// New starts a session on a fresh board. A nil log silences the session.
func New(config Config, log logrus.FieldLogger) (*Session, error) {
	id := uuid.NewString()
	log = orDiscard(log).WithField("session", id)

	board, err := config.createBoard(log)
	if err != nil {
		return nil, err
	}

	return &Session{id: id, log: log, board: board}, nil
}

func (s *Session) ID() string {
	return s.id
}

// NewGame replaces the session's board with a fresh one.
func (s *Session) NewGame(config Config) error {
	board, err := config.createBoard(s.log)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = board

	s.log.WithFields(logrus.Fields{
		"width":  config.Width,
		"height": config.Height,
		"mines":  config.NumMines,
	}).Info("new game")
	return nil
}

func (s *Session) State() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Snapshot()
}

func (s *Session) OpenField(x, y int) (game.OpenResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.board.Open(game.Pos(x, y))
	if err == nil && result.Outcome == game.MineHit {
		s.log.WithFields(logrus.Fields{"x": x, "y": y}).Info("game lost")
	}
	return result, err
}

func (s *Session) ToggleFlag(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.ToggleFlag(game.Pos(x, y))
}

func (s *Session) IsLost() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.IsLost()
}

func (s *Session) IsWon() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.IsWon()
}

// Do runs fn with exclusive access to the board, for callers that need
// several operations to happen atomically.
func (s *Session) Do(fn func(board *game.Board) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.board)
}
