package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by LoadTetris when no file on disk was used.
const SourceEmbedded = "embedded"

const tetrisFile = "tetris.yaml"

// LoadTetris loads Tetris configuration and reports where it came from.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadTetris(customPath string) (TetrisConfig, string, error) {
	// Custom path is explicit: any failure is reported
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseTetris(data)
		if err != nil {
			return TetrisConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return TetrisConfig{}, "", err
		}
		return cfg, customPath, nil
	}

	// Implicit locations are best effort
	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parseTetris(data)
		if err != nil {
			continue
		}
		if err := cfg.Validate(); err != nil {
			return TetrisConfig{}, "", fmt.Errorf("%s: %w", path, err)
		}
		return cfg, path, nil
	}

	cfg, err := parseTetris(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parseTetris decodes data on top of the hardcoded defaults.
func parseTetris(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as a YAML document.
func Marshal(cfg TetrisConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return out, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(tetrisFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", tetrisFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}
