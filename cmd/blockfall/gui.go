package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/gui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var guiCmd = &cobra.Command{
	Use:   "gui [mode]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there instead of the terminal.

Modes:
  blockfall          - Gravity follows real time (default)
  blockfall_classic  - Gravity counts frames

Examples:
  blockfall gui
  blockfall gui blockfall_classic --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGUI,
}

func runGUI(_ *cobra.Command, args []string) {
	gameID := "blockfall"
	if len(args) > 0 {
		gameID = args[0]
	}

	created, err := registry.Create(gameID)
	if err != nil {
		fail("%v\nRun 'blockfall list' to see available modes.", err)
	}
	game, ok := created.(*blockfall.Game)
	if !ok {
		fail("game %q has no desktop renderer", gameID)
	}

	if _, err := loadConfig(); err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := openLogger(flagLogFile, io.Discard, flagVerbose)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = seed()
	if err := gui.Run(game, rc, flagFPS, logger); err != nil {
		closeLog()
		fail("%v", err)
	}
}
