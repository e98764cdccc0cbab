// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-pick-stv/cliparse"
	"github.com/danielhkuo/quickly-pick-stv/models"
	"github.com/danielhkuo/quickly-pick-stv/stv"
)

type Tallier struct {
	rng   stv.Rand
	now   func() time.Time
	newID func() string
}

// NewTallier builds a Tallier whose tie breaks follow cfg.Seed, or the
// process-wide source when the seed is 0
func NewTallier(cfg cliparse.Config) *Tallier {
	var rng stv.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	return &Tallier{
		rng:   rng,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Tally counts a closed election and returns its result snapshot
func (t *Tallier) Tally(in models.ElectionInput) (models.ResultSnapshot, error) {
	res, err := stv.Tabulate(in.Candidates, in.Ballots, in.Seats, t.rng)
	if err != nil {
		return models.ResultSnapshot{}, fmt.Errorf("failed to tabulate %q: %w", in.Name, err)
	}

	snapshot := models.ResultSnapshot{
		ID:               t.newID(),
		Name:             in.Name,
		Method:           models.MethodSTV,
		ComputedAt:       t.now(),
		Seats:            in.Seats,
		BallotCount:      len(in.Ballots),
		ValidBallotCount: countValid(in.Ballots),
		InputsHash:       ComputeInputsHash(in),
		HideVoteCounts:   in.HideVoteCounts,
		Quota:            res.Quota,
		RoundResults:     res.RoundResults,
		Winners:          res.Winners,
	}

	slog.Info("election tallied",
		"snapshot_id", snapshot.ID,
		"name", in.Name,
		"seats", in.Seats,
		"ballots", snapshot.BallotCount,
		"quota", res.Quota,
		"rounds", len(res.RoundResults),
		"winners", res.Winners,
	)

	return snapshot, nil
}

// ComputeInputsHash fingerprints the candidates, seat count and ballots so
// two counts of the same election can be shown to share their input
func ComputeInputsHash(in models.ElectionInput) string {
	h := sha256.New()

	writeField(h, "candidates")
	for _, c := range in.Candidates {
		writeField(h, c)
	}
	writeField(h, fmt.Sprintf("seats=%d", in.Seats))
	for _, ballot := range in.Ballots {
		writeField(h, fmt.Sprintf("ballot=%d", len(ballot)))
		for _, c := range ballot {
			writeField(h, c)
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}

// writeField length-prefixes s so adjacent fields cannot run together
func writeField(h hash.Hash, s string) {
	fmt.Fprintf(h, "%d:%s;", len(s), s)
}

func countValid(ballots [][]string) int {
	n := 0
	for _, b := range ballots {
		if len(b) > 0 {
			n++
		}
	}
	return n
}
