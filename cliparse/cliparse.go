// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

var (
	ErrInvalidFormat   = errors.New("format must be json or text")
	ErrInvalidLogLevel = errors.New("log level must be debug, info, warn or error")
)

type Config struct {
	InputPath      string
	Format         string
	Seed           uint64
	HideVoteCounts bool
	LogLevel       string
	EnvFile        string
}

// ParseFlags parses flags, loads the env file, then fills unset values
// from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quickly-pick-stv", flag.ContinueOnError)

	fs.StringVar(&cfg.InputPath, "f", "", "Election file (- for stdin)")
	fs.StringVar(&cfg.Format, "o", "", "Output format (json or text)")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Tie-break seed (0 for system randomness)")
	fs.BoolVar(&cfg.HideVoteCounts, "hide-counts", false, "Hide vote counts in output")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.EnvFile, "env", ".env", "Dotenv file to load")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.InputPath == "" {
		cfg.InputPath = os.Getenv("STV_INPUT")
	}
	if cfg.InputPath == "" {
		cfg.InputPath = "-"
	}

	if cfg.Format == "" {
		cfg.Format = os.Getenv("STV_FORMAT")
		if cfg.Format == "" {
			cfg.Format = FormatJSON
		}
	}
	if cfg.Format != FormatJSON && cfg.Format != FormatText {
		return Config{}, ErrInvalidFormat
	}

	if cfg.Seed == 0 {
		if seedStr := os.Getenv("STV_SEED"); seedStr != "" {
			seed, err := strconv.ParseUint(seedStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid STV_SEED env variable")
			}
			cfg.Seed = seed
		}
	}

	if !cfg.HideVoteCounts {
		if hide := os.Getenv("STV_HIDE_COUNTS"); hide != "" {
			v, err := strconv.ParseBool(hide)
			if err != nil {
				return Config{}, errors.New("invalid STV_HIDE_COUNTS env variable")
			}
			cfg.HideVoteCounts = v
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseLogLevel maps a level name to its slog level
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, ErrInvalidLogLevel
	}
}

// loadEnvFile loads variables that are not already set. A missing file is fine.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
