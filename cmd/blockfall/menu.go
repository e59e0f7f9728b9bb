package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Quitting a game returns to the menu.

Examples:
  blockfall menu
  blockfall menu --fps 30`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := openLogger(flagLogFile, io.Discard, flagVerbose)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	keys := tui.NewKeyMap(cfg.Controls)
	rc := runtimeConfig()
	for {
		result, err := tui.RunMenu(rc)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		rc = result.Config
		if result.Quit {
			return
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create game", "error", err)
			continue
		}

		rc.Seed = seed()
		if err := tui.Run(game, rc, keys, logger); err != nil {
			logger.Error("game failed", "game", result.GameID, "error", err)
		}
	}
}
