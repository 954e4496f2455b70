package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/render"
)

const playHelp = `commands:
  o X Y   open a cell (on an open cell: open its neighbors when its flags are satisfied)
  f X Y   toggle a flag
  q       quit
`

// play reads commands from in until the game ends, in is exhausted, or the
// player quits.
func play(board *game.Board, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, playHelp)
	fmt.Fprint(out, render.Text(board.Snapshot()))

	scanner := bufio.NewScanner(in)
	for board.State() == game.Ongoing {
		fmt.Fprintf(out, "%d mines left> ", board.MinesRemaining())
		if !scanner.Scan() {
			break
		}

		move, quit, err := parseMove(scanner.Text())
		if quit {
			break
		}
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		if _, err := board.Apply(move); err != nil {
			if errors.Is(err, game.ErrOutOfBounds) {
				fmt.Fprintln(out, err)
				continue
			}
			return err
		}
		fmt.Fprint(out, render.Text(board.Snapshot()))
	}

	return errors.Wrap(scanner.Err(), "read commands")
}

func parseMove(line string) (game.Move, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 1 && fields[0] == "q" {
		return game.Move{}, true, nil
	}
	if len(fields) != 3 {
		return game.Move{}, false, errors.Errorf("unrecognized command %q", line)
	}

	var action game.Action
	switch fields[0] {
	case "o":
		action = game.Click
	case "f":
		action = game.RightClick
	default:
		return game.Move{}, false, errors.Errorf("unknown command %q", fields[0])
	}

	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Move{}, false, errors.Wrap(err, "column")
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return game.Move{}, false, errors.Wrap(err, "row")
	}

	return game.Move{Pos: game.Pos(x, y), Action: action}, false, nil
}
