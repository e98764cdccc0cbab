// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stv

import "math"

// balanceTolerance is the allowed drift per valid ballot between the
// weight accounted for and the number of valid ballots.
const balanceTolerance = 1e-6

// Tabulate computes the winners of a multi-winner STV election with
// fractional surplus transfer.
//
// Candidates must be unique. Every ballot lists candidates in preference
// order, each at most once; empty ballots are abstentions. Ties for the
// lowest count are broken with rng, or with the process-wide source if rng
// is nil.
//
// Errors wrap ErrInvalidInput or ErrAlgorithm. No partial result is
// returned on error.
func Tabulate(candidates []string, ballots [][]string, seats int, rng Rand) (Result, error) {
	if rng == nil {
		rng = globalRand{}
	}

	valid, err := validate(candidates, ballots, seats)
	if err != nil {
		return Result{}, err
	}

	quota := Quota(valid, seats)
	l := newLedger(candidates, ballots)

	res := Result{Quota: quota, RoundResults: []RoundResult{}, Winners: []string{}}
	maxRounds := len(candidates) + 1
	elected := 0

	for round := 1; elected < seats && l.len() > 0; round++ {
		if round > maxRounds {
			return Result{}, algorithmError("round limit exceeded")
		}

		counts := l.counts()
		forced := len(counts)+elected <= seats

		action, err := decide(counts, quota, forced, rng)
		if err != nil {
			return Result{}, err
		}
		action.apply(l, counts, quota)

		rr := action.result(round, counts)
		res.RoundResults = append(res.RoundResults, rr)
		for _, cr := range rr.CandidateResults {
			if cr.IsSelected {
				res.Winners = append(res.Winners, cr.Name)
			}
		}
		elected += len(action.elected)

		if math.Abs(l.balance()-float64(valid)) > balanceTolerance*math.Max(1, float64(valid)) {
			return Result{}, algorithmError("ballot weight not conserved")
		}
	}

	return res, nil
}

// Quota is the Droop quota, deliberately not rounded down.
func Quota(validBallots, seats int) float64 {
	return float64(validBallots)/float64(seats+1) + 1
}

// validate rejects malformed input and returns the number of non-empty ballots.
func validate(candidates []string, ballots [][]string, seats int) (int, error) {
	if seats < 1 {
		return 0, invalidInput("seats must be at least 1, got %d", seats)
	}

	known := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c == "" {
			return 0, invalidInput("empty candidate name")
		}
		if known[c] {
			return 0, invalidInput("duplicate candidate %q", c)
		}
		known[c] = true
	}

	valid := 0
	for i, b := range ballots {
		if len(b) == 0 {
			continue
		}
		seen := make(map[string]bool, len(b))
		for _, c := range b {
			if !known[c] {
				return 0, invalidInput("ballot %d references unknown candidate %q", i, c)
			}
			if seen[c] {
				return 0, invalidInput("ballot %d ranks candidate %q more than once", i, c)
			}
			seen[c] = true
		}
		valid++
	}
	return valid, nil
}
