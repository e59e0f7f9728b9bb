// blockfall is a falling-block puzzle game for the terminal, SSH and the desktop.
//
// Usage:
//
//	blockfall list            - List available game modes
//	blockfall play [mode]     - Play a mode (default: blockfall)
//	blockfall menu            - Pick a mode interactively
//	blockfall serve           - Start SSH server for remote play
//	blockfall gui [mode]      - Play in a desktop window
//	blockfall config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible piece order
//	--config <path>    - Use a specific YAML or TOML config file
//	--log-file <path>  - Write logs to a file
//	--verbose          - Enable debug logging
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall drops pieces onto a 10x20 board. Fill a row to clear it
and score points; the game ends when a new piece has no room to spawn.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  gui      - Play in a desktop window
  config   - Print the effective configuration

Examples:
  blockfall play
  blockfall play blockfall_classic --fps 30
  blockfall serve --ssh :2222
  blockfall gui --config ./blockfall.toml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration every command shares and points the
// game package at the same file.
func loadConfig() (config.BlockfallConfig, error) {
	blockfall.SetConfigPath(flagConfig)
	return config.LoadBlockfall(flagConfig)
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = seed()
	return cfg
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
