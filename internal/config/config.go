package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/watcher"
)

type Config struct {
	LogLevel    string                `yaml:"log_level"`
	LogFormat   string                `yaml:"log_format"`
	HistoryPath string                `yaml:"history_path"`
	DataDir     string                `yaml:"data_dir"`
	CLIBinary   string                `yaml:"cli_binary"`
	Watcher     watcher.WatcherConfig `yaml:"watcher"`
}

func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".mcp-devcontainer")

	return &Config{
		LogLevel:    "info",
		LogFormat:   "text",
		HistoryPath: filepath.Join(dataDir, "history.db"),
		DataDir:     dataDir,
		CLIBinary:   "devcontainer",
		Watcher:     watcher.DefaultWatcherConfig(),
	}
}

// Load reads the optional config file, falling back to defaults for any
// field the file leaves unset. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = filepath.Join(cfg.DataDir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) EnsureDirectories() error {
	return os.MkdirAll(c.DataDir, 0700)
}
