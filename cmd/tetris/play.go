package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/catalog"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagSpeed string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a session. The board is empty until you press Enter.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  S/Down     - Move down
  W/Up       - Rotate
  Enter      - Start
  P/Esc      - Pause
  R          - Restart (after the board is full)
  Q/Ctrl+C   - Quit

Speed options:
  slow   - Gravity every 15 steps
  normal - Gravity every 10 steps (classic)
  fast   - Gravity every 5 steps
  fixed  - Keep the config's gravity_every

Examples:
  tetris play
  tetris play --speed fast
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger(flagLogLevel)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}

	if flagSpeed != "" {
		preset := config.SpeedPreset(flagSpeed)
		if !config.IsKnownPreset(preset) {
			fatal("unknown speed %q (want slow, normal, fast or fixed)", flagSpeed)
		}
		config.ApplySpeedPreset(&cfg, preset)
	}

	catalogPath := cfg.Catalog.Path
	if flagCatalog != "" {
		catalogPath = flagCatalog
	}

	pieces, err := catalog.Load(catalogPath)
	if err != nil {
		fatal("%v", err)
	}
	if err := pieces.FitsBoard(cfg.Board.Width, cfg.Board.Height); err != nil {
		fatal("%v", err)
	}
	logger.Info("catalog loaded", "origin", pieces.Origin(), "pieces", pieces.PieceCount())

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: cfg.Timing.TickInterval(),
		Seed:         flagSeed,
	}

	game := tetris.New(pieces, tetris.Settings{
		Width:        cfg.Board.Width,
		Height:       cfg.Board.Height,
		GravityEvery: cfg.Timing.GravityEvery,
	})

	// The game works without history.
	var store tui.SessionStore
	db, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", flagDBPath, "err", err)
	} else {
		store = db
	}

	result, runErr := tui.Run(game, store, runtime, tui.NewKeyMap(cfg.Keys))

	if db != nil {
		db.Close()
	}

	if runErr != nil {
		fatal("running game: %v", runErr)
	}

	if result.SaveErr != nil {
		logger.Warn("session not saved", "err", result.SaveErr)
	}
	logSession(logger, result)
}

func logSession(logger *log.Logger, r tui.Result) {
	logger.Info("session finished",
		"outcome", r.Outcome,
		"pieces", r.Pieces,
		"ticks", r.Ticks,
		"duration", r.Duration.Round(time.Millisecond),
	)
}
