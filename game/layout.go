package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Layout is a textual description of a board: its mines along with which
// cells are open or flagged. One row per line:
//
//	#  hidden
//	.  open
//	f  flagged
//	O  hidden mine
//	F  flagged mine
//	*  opened mine (the game is lost)
type Layout struct {
	Seed  int64  `yaml:"seed,omitempty"`
	Board string `yaml:"board"`
}

// Serialize encodes the layout as YAML.
func (layout Layout) Serialize() (string, error) {
	out, err := yaml.Marshal(layout)
	if err != nil {
		return "", errors.Wrap(err, "marshal layout")
	}
	return string(out), nil
}

func ParseLayout(in string) (Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal([]byte(in), &layout); err != nil {
		return Layout{}, errors.Wrap(err, "unmarshal layout")
	}
	return layout, nil
}

// Layout captures the board's current state.
func (board *Board) Layout() Layout {
	var builder strings.Builder
	for y := 0; y < board.height; y++ {
		if y > 0 {
			builder.WriteByte('\n')
		}
		for x := 0; x < board.width; x++ {
			builder.WriteByte(board.layoutChar(Pos(x, y)))
		}
	}
	return Layout{Seed: board.seed, Board: builder.String()}
}

func (board *Board) layoutChar(pos Position) byte {
	switch {
	case board.mines.Contains(pos):
		switch {
		case board.open.Contains(pos):
			return '*'
		case board.flagged.Contains(pos):
			return 'F'
		default:
			return 'O'
		}
	case board.flagged.Contains(pos):
		return 'f'
	case board.open.Contains(pos):
		return '.'
	default:
		return '#'
	}
}

// CreateBoard builds a board from the layout. When fresh is set, only the mines are
// taken from the layout and every cell starts hidden.
func (layout Layout) CreateBoard(fresh bool, opts ...Option) (*Board, error) {
	rows := strings.Split(strings.TrimRight(layout.Board, "\n"), "\n")
	height := len(rows)
	width := len(rows[0])
	if width == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "empty layout")
	}

	var mines, open, flagged []Position
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidConfiguration,
				"layout row %d has %d cells, expected %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			pos := Pos(x, y)
			switch c := row[x]; c {
			case '#':
			case '.':
				open = append(open, pos)
			case 'f':
				flagged = append(flagged, pos)
			case 'O':
				mines = append(mines, pos)
			case 'F':
				mines = append(mines, pos)
				flagged = append(flagged, pos)
			case '*':
				mines = append(mines, pos)
				open = append(open, pos)
			default:
				return nil, errors.Wrapf(ErrInvalidConfiguration, "unknown layout cell %q at %v", c, pos)
			}
		}
	}

	board, err := NewWithMines(width, height, mines, opts...)
	if err != nil {
		return nil, err
	}
	board.seed = layout.Seed

	if fresh {
		return board, nil
	}

	for _, pos := range flagged {
		board.flagged.Add(pos)
	}
	for _, pos := range open {
		board.open.Add(pos)
		if board.mines.Contains(pos) {
			board.lost = true
		}
	}

	return board, nil
}
