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

// Config captures the client settings drip reads at startup.
type Config struct {
	APIURL         string
	PollInterval   time.Duration
	RequestTimeout time.Duration
	UploadParallel int
}

const (
	defaultConfigPath     = "~/.config/drip/config.toml"
	defaultAPIURL         = "http://127.0.0.1:8000"
	defaultPollSeconds    = 3
	defaultTimeoutSeconds = 15
	defaultUploadParallel = 3
)

// Default returns the built-in configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:         defaultAPIURL,
		PollInterval:   defaultPollSeconds * time.Second,
		RequestTimeout: defaultTimeoutSeconds * time.Second,
		UploadParallel: defaultUploadParallel,
	}
}

// Load locates and parses the drip config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		PollSeconds    int    `toml:"poll_seconds"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		UploadParallel int    `toml:"upload_parallel"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if url := strings.TrimSpace(raw.APIURL); url != "" {
		cfg.APIURL = url
	}
	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollSeconds) * time.Second
	}
	if raw.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if raw.UploadParallel > 0 {
		cfg.UploadParallel = raw.UploadParallel
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
