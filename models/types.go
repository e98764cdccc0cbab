// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/danielhkuo/quickly-pick-stv/stv"
)

// Voting method constants
const (
	MethodSTV = "stv"
)

// Request types

// ElectionInput is a closed election handed over for counting.
// Ballots list candidate names in preference order.
type ElectionInput struct {
	Name           string     `json:"name"`
	Candidates     []string   `json:"candidates"`
	Ballots        [][]string `json:"ballots"`
	Seats          int        `json:"seats"`
	HideVoteCounts bool       `json:"hide_vote_counts"`
}

// Result types

type ResultSnapshot struct {
	ID               string            `json:"id"`
	Name             string            `json:"name,omitempty"`
	Method           string            `json:"method"`
	ComputedAt       time.Time         `json:"computed_at"`
	Seats            int               `json:"seats"`
	BallotCount      int               `json:"ballot_count"`
	ValidBallotCount int               `json:"valid_ballot_count"`
	InputsHash       string            `json:"inputs_hash"` // SHA-256 of candidates, seats and ballots
	HideVoteCounts   bool              `json:"hide_vote_counts"`
	Quota            float64           `json:"quota"`
	RoundResults     []stv.RoundResult `json:"round_results"`
	Winners          []string          `json:"winners"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
