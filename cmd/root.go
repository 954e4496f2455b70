package cmd

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/gosweep/director"
	"github.com/they4kman/gosweep/director/constraint"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/random"
	"github.com/they4kman/gosweep/render"
)

// envConfig is read before flags; any flag set on the command line wins.
type envConfig struct {
	Width    int    `env:"GOSWEEP_WIDTH"`
	Height   int    `env:"GOSWEEP_HEIGHT"`
	NumMines int    `env:"GOSWEEP_MINES"`
	Seed     int64  `env:"GOSWEEP_SEED"`
	LogLevel string `env:"GOSWEEP_LOG_LEVEL" envDefault:"info"`
}

var gameConfig = game.NewGameConfig()
var useDirector = false
var layoutPath string
var dumpLayout = false
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `gosweep is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually on the terminal
	gosweep

Use the director flag to make the computer play for you
	gosweep -director
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyEnv(cmd); err != nil {
			return err
		}

		log := logrus.New()
		log.Out = cmd.ErrOrStderr()
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrap(err, "log level")
		}
		log.SetLevel(level)
		gameConfig.Logger = log

		if layoutPath != "" {
			layout, err := readLayout(layoutPath)
			if err != nil {
				return err
			}
			gameConfig.Layout = &layout
		}

		board, err := gameConfig.CreateBoard()
		if err != nil {
			return err
		}

		if useDirector {
			player := director.Player{
				Director: constraint.New(random.New(board.Seed())),
				MaxMoves: board.NumCells(),
				Log:      log,
			}
			if _, err := player.Play(board); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Text(board.Snapshot()))
		} else if err := play(board, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), board.State())

		if dumpLayout {
			out, err := board.Layout().Serialize()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// applyEnv copies environment settings into every option whose flag was not
// given explicitly.
func applyEnv(cmd *cobra.Command) error {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return errors.Wrap(err, "parse env")
	}

	flags := cmd.Flags()
	if cfg.Width != 0 && !flags.Changed("width") {
		gameConfig.Width = cfg.Width
	}
	if cfg.Height != 0 && !flags.Changed("height") {
		gameConfig.Height = cfg.Height
	}
	if cfg.NumMines != 0 && !flags.Changed("mines") {
		gameConfig.NumMines = cfg.NumMines
	}
	if cfg.Seed != 0 && !flags.Changed("seed") {
		gameConfig.Seed = cfg.Seed
	}
	if !flags.Changed("log-level") {
		logLevel = cfg.LogLevel
	}
	return nil
}

func readLayout(path string) (game.Layout, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return game.Layout{}, errors.Wrap(err, "read layout")
	}
	return game.ParseLayout(string(in))
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", gameConfig.Width, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", gameConfig.Height, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().StringVar(&layoutPath, "layout", "", "Path to a YAML board layout to play instead of a random board")
	rootCmd.Flags().BoolVar(&gameConfig.LoadLayoutFresh, "fresh", true, "Hide every cell of the loaded layout, keeping only its mines")
	rootCmd.Flags().BoolVar(&dumpLayout, "dump-layout", false, "Print the final board layout as YAML")
	rootCmd.Flags().BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
