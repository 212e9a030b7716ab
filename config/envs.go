// Package config loads the micromouse runtime settings from the environment,
// reading a .env file first when one is present.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/micromouse/maze"
	"github.com/katalvlaran/micromouse/simulate"
)

// Environment variable names.
const (
	EnvRows         = "MICROMOUSE_ROWS"
	EnvCols         = "MICROMOUSE_COLS"
	EnvStepInterval = "MICROMOUSE_STEP_INTERVAL"
	EnvHTTPAddr     = "MICROMOUSE_HTTP_ADDR"
	EnvSound        = "MICROMOUSE_SOUND"
	EnvGinMode      = "GIN_MODE"
)

// Config holds the application's configuration values.
type Config struct {
	Rows         int           // Board rows for a fresh session, clamped to [5,20]
	Cols         int           // Board columns for a fresh session, clamped to [5,20]
	StepInterval time.Duration // Delay between two mouse steps
	HTTPAddr     string        // Listen address of the route API
	GinMode      string        // Mode for the Gin framework (release, debug, test)
	Sound        bool          // Click on every mouse step in the terminal UI
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Rows:         maze.DefaultSize,
		Cols:         maze.DefaultSize,
		StepInterval: simulate.DefaultInterval,
		HTTPAddr:     ":8080",
		GinMode:      "release",
		Sound:        false,
	}
}

// Load reads an optional .env file from the working directory, then the
// environment. Unset variables keep their defaults; malformed ones are errors.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return FromEnv()
}

// LoadFile is Load with an explicit .env path. A missing file is an error.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Rows, err = getEnvAsInt(EnvRows, cfg.Rows); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = getEnvAsInt(EnvCols, cfg.Cols); err != nil {
		return Config{}, err
	}
	cfg.Rows, cfg.Cols = maze.ClampSize(cfg.Rows), maze.ClampSize(cfg.Cols)

	if cfg.StepInterval, err = getEnvAsDuration(EnvStepInterval, cfg.StepInterval); err != nil {
		return Config{}, err
	}
	if cfg.StepInterval <= 0 {
		return Config{}, fmt.Errorf("config: %s must be positive, got %s", EnvStepInterval, cfg.StepInterval)
	}
	if cfg.Sound, err = getEnvAsBool(EnvSound, cfg.Sound); err != nil {
		return Config{}, err
	}
	cfg.HTTPAddr = getEnvWithDefault(EnvHTTPAddr, cfg.HTTPAddr)
	cfg.GinMode = getEnvWithDefault(EnvGinMode, cfg.GinMode)

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default value if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}

// getEnvAsDuration retrieves a Go duration environment variable or returns a default value if not set.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a duration: %w", key, err)
	}
	return d, nil
}

// getEnvAsBool retrieves a boolean environment variable or returns a default value if not set.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("config: %s must be a boolean: %w", key, err)
	}
	return b, nil
}
