package render

import (
	"testing"

	"github.com/they4kman/gosweep/game"
)

func TestText(t *testing.T) {
	board, err := game.Layout{Board: "O.#\n#f#"}.CreateBoard(false)
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}

	expected := "# 1 #\n# F #\n"
	if text := Text(board.Snapshot()); text != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, text)
	}

	if _, err := board.Open(game.Pos(0, 0)); err != nil {
		t.Fatalf("Open: %v", err)
	}
	expected = "* 1 #\n# F #\n"
	if text := Text(board.Snapshot()); text != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, text)
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		state    game.CellState
		expected byte
	}{
		{game.Unrevealed, '#'},
		{game.Flag, 'F'},
		{game.MineUnrevealed, '*'},
		{game.MineLosing, '*'},
		{game.Empty, '.'},
		{game.Number1, '1'},
		{game.Number8, '8'},
		{game.CellState(42), '?'},
	}

	for _, tt := range tests {
		if glyph := Glyph(tt.state); glyph != tt.expected {
			t.Errorf("%v: expected %q, got %q", tt.state, tt.expected, glyph)
		}
	}
}
