// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quickly-pick-stv counter.

quickly-pick-stv counts ranked-choice, multi-winner elections with the Single
Transferable Vote and fractional (Gregory) surplus transfer. It reads a
closed election, runs the count, and writes a round-by-round result snapshot.

# Running a Count

Read an election from a file and print a readable breakdown:

	go run . -f election.json -o text

Or pipe JSON through stdin with a fixed tie-break seed:

	cat election.json | go run . -seed 42

# Configuration

All settings are optional:

  - STV_INPUT (-f): Election file, "-" for stdin (default: "-")
  - STV_FORMAT (-o): json or text (default: json)
  - STV_SEED (-seed): Tie-break seed, 0 for system randomness
  - STV_HIDE_COUNTS (-hide-counts): Leave vote counts out of the report
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)

Variables may also come from a .env file (-env).

# Architecture

  - stv: The counting algorithm (pure, no I/O)
  - tally: Runs a count and stamps the result snapshot
  - report: Election decoding, JSON and text output
  - models: Input and output documents
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
