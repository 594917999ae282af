package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Editor EditorConfig `toml:"editor"`
	Color  ColorConfig  `toml:"color"`
}

type EditorConfig struct {
	// Command overrides $GIT_EDITOR/$VISUAL/$EDITOR for the edit choice.
	Command string `toml:"command"`
}

type ColorConfig struct {
	// Mode is "auto", "always" or "never". The --color flag and the
	// repository's color.ui both take precedence over it.
	Mode string `toml:"mode"`
}

func DefaultConfig() *Config {
	return &Config{
		Color: ColorConfig{
			Mode: "auto",
		},
	}
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "msglint.toml"), nil
}

func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			_ = cfg.Save() // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
