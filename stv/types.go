// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stv

import "math/rand/v2"

// Rand picks which candidate leaves the count when several tie for the
// lowest score. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// globalRand draws from the process-wide math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// CandidateResult is one contesting candidate's standing in a round.
type CandidateResult struct {
	Name       string  `json:"name"`
	VoteCount  float64 `json:"vote_count"`
	IsSelected bool    `json:"is_selected"`
	IsDraw     bool    `json:"is_draw"`
}

// DroppedCandidate is the candidate eliminated in a round
type DroppedCandidate struct {
	Name      string  `json:"name"`
	VoteCount float64 `json:"vote_count"`
	IsDraw    bool    `json:"is_draw"`
}

type RoundResult struct {
	Round            int               `json:"round"`
	CandidateResults []CandidateResult `json:"candidate_results"`
	DroppedCandidate *DroppedCandidate `json:"dropped_candidate,omitempty"`
}

// Result is the outcome of one tabulation. Winners are listed in the order
// they were elected, not by final vote count.
type Result struct {
	Quota        float64       `json:"quota"`
	RoundResults []RoundResult `json:"round_results"`
	Winners      []string      `json:"winners"`
}
