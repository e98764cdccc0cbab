// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally closes an election: it runs the STV count and records the
outcome as an immutable result snapshot.

	tallier := tally.NewTallier(cfg)
	snapshot, err := tallier.Tally(election)

Each snapshot gets a fresh UUID, the time it was computed, ballot counts and
an inputs hash. The hash covers candidates, seats and ballots in order, so
two snapshots with the same hash were counted from the same election.

Tie breaks use cfg.Seed when it is non-zero, which makes a count
reproducible. Errors from package stv are wrapped, so errors.Is still
matches stv.ErrInvalidInput and stv.ErrAlgorithm.
*/
package tally
