// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - InputPath: Election file, "-" for stdin (default: "-")
  - Format: Output format, json or text (default: json)
  - Seed: Tie-break seed, 0 for system randomness (default: 0)
  - HideVoteCounts: Leave vote counts out of the report (default: false)
  - LogLevel: debug, info, warn or error (default: info)
  - EnvFile: Dotenv file loaded before reading the environment (default: .env)

# CLI Flags

	-f            Election file
	-o            Output format
	-seed         Tie-break seed
	-hide-counts  Hide vote counts
	-log-level    Log level
	-env          Dotenv file

# Environment Variables

Flags fall back to environment variables:

	STV_INPUT       → -f
	STV_FORMAT      → -o
	STV_SEED        → -seed
	STV_HIDE_COUNTS → -hide-counts
	LOG_LEVEL       → -log-level

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the dotenv file. A missing
dotenv file is not an error.
*/
package cliparse
