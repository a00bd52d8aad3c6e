package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// serveConfig holds the runtime settings of the serve command.
type serveConfig struct {
	// Addr is the HTTP listen address.
	Addr string

	// LogLevel is a zerolog level name.
	LogLevel string

	// WarmupSteps optionally grows the engine before serving, so the
	// snapshot surface has structure to show from the first request.
	WarmupSteps int

	// WarmupSeed seeds the warmup growth; same seed, same starting universe.
	WarmupSeed int64
}

// defaultServeConfig returns the deterministic defaults used when no config
// file is supplied.
func defaultServeConfig() serveConfig {
	return serveConfig{
		Addr:     ":8420",
		LogLevel: "info",
	}
}

// fileConfig is the serve config.toml key mapping.
type fileConfig struct {
	Addr        string `toml:"addr"`
	LogLevel    string `toml:"log_level"`
	WarmupSteps int    `toml:"warmup_steps"`
	WarmupSeed  int64  `toml:"warmup_seed"`
}

// loadServeConfig reads a TOML config with default overlay: only keys present
// in the file override defaults.
func loadServeConfig(path string) (serveConfig, error) {
	cfg := defaultServeConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return serveConfig{}, fmt.Errorf("load serve config: %w", err)
	}

	if meta.IsDefined("addr") {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("warmup_steps") {
		cfg.WarmupSteps = raw.WarmupSteps
	}
	if meta.IsDefined("warmup_seed") {
		cfg.WarmupSeed = raw.WarmupSeed
	}

	if cfg.Addr == "" {
		return serveConfig{}, fmt.Errorf("load serve config: addr must not be empty")
	}
	if cfg.WarmupSteps < 0 {
		return serveConfig{}, fmt.Errorf("load serve config: warmup_steps must be >= 0")
	}

	return cfg, nil
}
