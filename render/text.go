// Package render turns board snapshots into text for terminals and logs.
package render

import (
	"strings"

	"github.com/they4kman/gosweep/game"
)

// Glyph returns the character used for a cell state.
func Glyph(state game.CellState) byte {
	switch state {
	case game.Unrevealed:
		return '#'
	case game.Flag:
		return 'F'
	case game.MineUnrevealed, game.MineLosing:
		return '*'
	case game.Empty:
		return '.'
	}
	if count, ok := state.Count(); ok {
		return byte('0' + count)
	}
	return '?'
}

// Text renders one row per line with cells separated by spaces.
func Text(snapshot game.Snapshot) string {
	var builder strings.Builder
	for _, row := range snapshot.Cells {
		for x, state := range row {
			if x > 0 {
				builder.WriteByte(' ')
			}
			builder.WriteByte(Glyph(state))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
