package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

var (
	cfgFile = "goban-local/config.json"
)

// Board sizes GTP vertices can address.
const (
	MinBoardSize = 2
	MaxBoardSize = 25
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// BoardConfig holds settings for new games.
type BoardConfig struct {
	DefaultSize int `json:"default_size" env:"GOBAN_BOARD_SIZE" env-description:"Board size of a new game (2-25)"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `json:"level" env:"GOBAN_LOG_LEVEL" env-description:"Log level: debug, info, warn or error"`
	File  string `json:"file" env:"GOBAN_LOG_FILE" env-description:"Log file path; logs go to stderr when empty"`
}

type Config struct {
	Board BoardConfig `json:"board"`
	Log   LogConfig   `json:"log"`
}

// InitConfig loads the config file from the XDG config directories, if one
// exists, then applies environment overrides.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		err = cleanenv.ReadConfig(absPath, &config)
	} else {
		err = cleanenv.ReadEnv(&config)
	}
	if err != nil {
		return nil, &InvalidConfig{err.Error()}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Board.DefaultSize < MinBoardSize || c.Board.DefaultSize > MaxBoardSize {
		return &InvalidConfig{fmt.Sprintf("board size must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, c.Board.DefaultSize)}
	}
	if _, ok := logLevels[c.Log.Level]; !ok {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the configured level, defaulting to info.
func (c LogConfig) SlogLevel() slog.Level {
	if level, ok := logLevels[c.Level]; ok {
		return level
	}
	return slog.LevelInfo
}

// Save writes the config to the user's XDG config directory and returns the path.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("locate config file: %w", err)
	}
	if err := saveCfgFile(absPath, c, 0664); err != nil {
		return "", err
	}
	return absPath, nil
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Usage returns a flag usage function that also documents the environment
// variables read by InitConfig.
func Usage(header string, usage func()) func() {
	var cfg Config
	return cleanenv.FUsage(os.Stderr, &cfg, &header, usage)
}
