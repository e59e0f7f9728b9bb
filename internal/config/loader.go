package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are tried in order inside each search directory.
var configNames = []string{"blockfall.yaml", "blockfall.yml", "blockfall.toml"}

// LoadBlockfall loads the game configuration.
// Search order: customPath -> ~/.blockfall/configs -> ./configs -> embedded default.
// Files found during the search that fail to parse or validate are skipped;
// a bad customPath is an error.
func LoadBlockfall(customPath string) (BlockfallConfig, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return BlockfallConfig{}, err
		}
		return cfg, nil
	}

	var dirs []string
	if dir := userConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "configs")

	for _, dir := range dirs {
		for _, name := range configNames {
			if cfg, err := LoadFile(filepath.Join(dir, name)); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := Parse(defaultBlockfallYAML, FormatYAML)
	if err != nil {
		return DefaultBlockfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, parses and validates a single configuration file.
// The format is picked from the file extension.
func LoadFile(path string) (BlockfallConfig, error) {
	format, err := FormatFor(path)
	if err != nil {
		return BlockfallConfig{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return BlockfallConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return BlockfallConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Format identifies a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor maps a file extension to a Format.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unsupported file type %q", filepath.Ext(path))
	}
}

// Parse decodes data on top of the hardcoded defaults, so a file only needs
// the keys it changes, then validates the result.
func Parse(data []byte, format Format) (BlockfallConfig, error) {
	cfg := DefaultBlockfallConfig()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return BlockfallConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return BlockfallConfig{}, fmt.Errorf("failed to parse toml: %w", err)
		}
	default:
		return BlockfallConfig{}, fmt.Errorf("unsupported format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return BlockfallConfig{}, err
	}
	return cfg, nil
}

// Encode writes cfg in the given format.
func Encode(cfg BlockfallConfig, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported format %q", format)
	}
	return buf.Bytes(), nil
}

// userConfigDir returns ~/.blockfall/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs")
}
