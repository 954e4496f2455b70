package game

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/gosweep/random"
	"github.com/they4kman/gosweep/util/collections"
)

// Board holds the state of a single game. Mine placement is fixed at
// construction; the open set only grows, the flagged set toggles, and once the
// board is lost neither changes again.
//
// A Board is not safe for concurrent use.
type Board struct {
	width, height int // in number of cells
	seed          int64

	mines   collections.Set[Position]
	open    collections.Set[Position]
	flagged collections.Set[Position]
	lost    bool

	log logrus.FieldLogger
}

type Option func(*boardOptions)

type boardOptions struct {
	generator *random.Generator
	log       logrus.FieldLogger
}

// WithGenerator sets the generator used to place mines.
func WithGenerator(generator *random.Generator) Option {
	return func(opts *boardOptions) {
		opts.generator = generator
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(opts *boardOptions) {
		opts.log = log
	}
}

func buildOptions(opts []Option) boardOptions {
	var options boardOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.log == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		options.log = discard
	}
	return options
}

// New creates a board with mineCount mines placed uniformly at random.
func New(width, height, mineCount int, opts ...Option) (*Board, error) {
	if err := checkDimensions(width, height, mineCount); err != nil {
		return nil, err
	}

	options := buildOptions(opts)
	if options.generator == nil {
		options.generator = random.Default()
	}

	board := createBoard(width, height, options)
	board.seed = options.generator.Seed()

	// Duplicate draws are retried; the mineCount < width*height check above
	// guarantees this terminates.
	for board.mines.Len() < mineCount {
		x, err := options.generator.Range(0, width)
		if err != nil {
			return nil, err
		}
		y, err := options.generator.Range(0, height)
		if err != nil {
			return nil, err
		}
		board.mines.Add(Pos(x, y))
	}

	board.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  mineCount,
		"seed":   board.seed,
	}).Debug("board created")

	return board, nil
}

// NewWithMines creates a board with mines at exactly the given positions.
func NewWithMines(width, height int, mines []Position, opts ...Option) (*Board, error) {
	if err := checkDimensions(width, height, len(mines)); err != nil {
		return nil, err
	}

	board := createBoard(width, height, buildOptions(opts))
	for _, mine := range mines {
		if !board.Contains(mine) {
			return nil, errors.Wrapf(ErrOutOfBounds, "mine at %v", mine)
		}
		if board.mines.Contains(mine) {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "duplicate mine at %v", mine)
		}
		board.mines.Add(mine)
	}

	return board, nil
}

func checkDimensions(width, height, mineCount int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "dimensions %dx%d must be positive", width, height)
	}
	if mineCount < 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "negative mine count %d", mineCount)
	}
	if mineCount >= width*height {
		return errors.Wrapf(ErrInvalidConfiguration,
			"%d mines do not leave a free cell on a %dx%d board", mineCount, width, height)
	}
	return nil
}

func createBoard(width, height int, options boardOptions) *Board {
	return &Board{
		width:   width,
		height:  height,
		mines:   collections.NewSet[Position](),
		open:    collections.NewSet[Position](),
		flagged: collections.NewSet[Position](),
		log:     options.log,
	}
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) NumMines() int {
	return board.mines.Len()
}

func (board *Board) NumFlags() int {
	return board.flagged.Len()
}

func (board *Board) NumOpen() int {
	return board.open.Len()
}

// MinesRemaining is the number of mines minus the number of flags. It goes
// negative when more cells are flagged than there are mines.
func (board *Board) MinesRemaining() int {
	return board.mines.Len() - board.flagged.Len()
}

// Seed returns the seed of the generator that placed the mines, or 0 for
// boards built from explicit positions.
func (board *Board) Seed() int64 {
	return board.seed
}

// Contains reports whether pos lies on the board.
func (board *Board) Contains(pos Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < board.width && pos.Y < board.height
}

func (board *Board) IsOpen(pos Position) bool {
	return board.open.Contains(pos)
}

func (board *Board) IsFlagged(pos Position) bool {
	return board.flagged.Contains(pos)
}

// Neighbors returns the in-bounds cells adjacent to pos, diagonals included.
func (board *Board) Neighbors(pos Position) []Position {
	neighbors := make([]Position, 0, 8)
	for y := max(pos.Y-1, 0); y <= min(pos.Y+1, board.height-1); y++ {
		for x := max(pos.X-1, 0); x <= min(pos.X+1, board.width-1); x++ {
			if x == pos.X && y == pos.Y {
				continue
			}
			neighbors = append(neighbors, Pos(x, y))
		}
	}
	return neighbors
}

// NeighboringMines counts the mines adjacent to pos.
func (board *Board) NeighboringMines(pos Position) int {
	return board.countNeighbors(pos, board.mines)
}

func (board *Board) neighboringFlags(pos Position) int {
	return board.countNeighbors(pos, board.flagged)
}

func (board *Board) countNeighbors(pos Position, set collections.Set[Position]) int {
	count := 0
	for _, neighbor := range board.Neighbors(pos) {
		if set.Contains(neighbor) {
			count++
		}
	}
	return count
}

// ToggleFlag flips the flag on an unopened cell. It does nothing once the
// game is lost or when the cell is already open.
func (board *Board) ToggleFlag(pos Position) error {
	if !board.Contains(pos) {
		return errors.Wrapf(ErrOutOfBounds, "toggle flag at %v", pos)
	}
	if board.lost || board.open.Contains(pos) {
		return nil
	}

	flagged := board.flagged.Toggle(pos)
	board.log.WithFields(logrus.Fields{
		"x":       pos.X,
		"y":       pos.Y,
		"flagged": flagged,
	}).Debug("flag toggled")

	board.logIfWon()
	return nil
}

func (board *Board) IsLost() bool {
	return board.lost
}

// IsWon reports whether every cell is either open or flagged, without
// checking that the flags sit on mines.
func (board *Board) IsWon() bool {
	if board.lost {
		return false
	}
	return board.flagged.Len()+board.open.Len() == board.NumCells()
}

func (board *Board) State() BoardState {
	switch {
	case board.lost:
		return Lost
	case board.IsWon():
		return Won
	default:
		return Ongoing
	}
}

func (board *Board) lose(pos Position) {
	board.lost = true
	board.log.WithFields(logrus.Fields{
		"x": pos.X,
		"y": pos.Y,
	}).Debug("mine hit, game lost")
}

func (board *Board) logIfWon() {
	if board.IsWon() {
		board.log.WithFields(logrus.Fields{
			"open":    board.open.Len(),
			"flagged": board.flagged.Len(),
		}).Debug("game won")
	}
}
