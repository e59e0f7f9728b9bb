package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode, or the default "blockfall" mode.

Default controls (change them in the config file):
  Left/A, Right/D  - Move
  Up/W             - Rotate
  Down/S           - Soft drop
  Enter/Space      - Start
  P/Esc            - Pause
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  blockfall play
  blockfall play blockfall_classic
  blockfall play --seed 42 --log-file play.log -v`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "blockfall"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'blockfall list' to see available modes.", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := openLogger(flagLogFile, io.Discard, flagVerbose)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fail("%v", err)
	}

	logger.Info("starting", "game", gameID, "fps", flagFPS)
	if err := tui.Run(game, runtimeConfig(), tui.NewKeyMap(cfg.Controls), logger); err != nil {
		closeLog()
		fail("%v", err)
	}
}
