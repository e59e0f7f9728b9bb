package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration blockfall would use, after applying the
search order: --config, ~/.blockfall/configs, ./configs, built-in default.

Redirect the output to start a config file of your own:
  blockfall config > ~/.blockfall/configs/blockfall.yaml
  blockfall config --format toml > ~/.blockfall/configs/blockfall.toml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		fail("unknown format %q", flagFormat)
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		fail("%v", err)
	}
	fmt.Fprint(os.Stdout, string(data))
}
