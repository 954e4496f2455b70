package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/they4kman/gosweep/game"
)

func TestRootDirectorWithEnv(t *testing.T) {
	t.Setenv("GOSWEEP_MINES", "2")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"-w", "4", "-h", "3", "--seed", "3", "-d", "--dump-layout"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "\nwon\n") && !strings.Contains(output, "\nlost\n") {
		t.Fatalf("expected the game to finish, output:\n%s", output)
	}

	idx := strings.Index(output, "board:")
	if idx < 0 {
		t.Fatalf("expected a dumped layout, output:\n%s", output)
	}
	layout, err := game.ParseLayout(output[idx:])
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	board, err := layout.CreateBoard(false)
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	if board.Width() != 4 || board.Height() != 3 || board.NumMines() != 2 {
		t.Errorf("unexpected board %dx%d with %d mines", board.Width(), board.Height(), board.NumMines())
	}
}
