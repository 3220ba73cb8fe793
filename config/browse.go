package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// BrowseConfig captures what the terminal browser needs to reach the API.
type BrowseConfig struct {
	APIBaseURL     string
	LogFile        string
	RequestTimeout time.Duration
}

const (
	defaultBrowseConfigPath = "~/.config/workouts/browse.toml"
	defaultBrowseLogFile    = "~/.local/state/workouts/browse.log"
	defaultAPIBaseURL       = "http://localhost:3001"
	defaultRequestTimeout   = 5 * time.Second
)

// LoadBrowseConfig parses the browser config, falling back to defaults when the file is missing.
func LoadBrowseConfig(path string) (BrowseConfig, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return BrowseConfig{}, err
	}

	cfg := BrowseConfig{
		APIBaseURL:     defaultAPIBaseURL,
		LogFile:        mustExpand(defaultBrowseLogFile),
		RequestTimeout: defaultRequestTimeout,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return BrowseConfig{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return BrowseConfig{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL     string `toml:"api_base_url"`
		LogFile        string `toml:"log_file"`
		RequestTimeout string `toml:"request_timeout"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return BrowseConfig{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBaseURL); base != "" {
		cfg.APIBaseURL = base
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if timeout := strings.TrimSpace(raw.RequestTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return BrowseConfig{}, fmt.Errorf("parse request_timeout %q: %w", timeout, err)
		}
		cfg.RequestTimeout = d
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultBrowseConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
