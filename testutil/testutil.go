// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/danielhkuo/quickly-pick-stv/cliparse"
	"github.com/danielhkuo/quickly-pick-stv/models"
)

// Tolerance is the float tolerance used by AssertClose
const Tolerance = 1e-6

// FixedRand returns a seeded source so tie breaks are reproducible
func FixedRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Repeat returns n copies of the same ballot
func Repeat(n int, ballot ...string) [][]string {
	out := make([][]string, n)
	for i := range out {
		out[i] = append([]string(nil), ballot...)
	}
	return out
}

// Ballots concatenates groups of ballots in order
func Ballots(groups ...[][]string) [][]string {
	var out [][]string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// RandomElection builds candidates c0..cN-1 and ballots that each rank a
// random prefix of a random permutation. Some ballots come out empty.
func RandomElection(rng *rand.Rand, numCandidates, numBallots int) ([]string, [][]string) {
	candidates := make([]string, numCandidates)
	for i := range candidates {
		candidates[i] = fmt.Sprintf("c%d", i)
	}

	ballots := make([][]string, numBallots)
	for i := range ballots {
		perm := rng.Perm(numCandidates)
		depth := rng.IntN(numCandidates + 1)
		ballot := make([]string, depth)
		for j := 0; j < depth; j++ {
			ballot[j] = candidates[perm[j]]
		}
		ballots[i] = ballot
	}
	return candidates, ballots
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		InputPath: "-",
		Format:    cliparse.FormatJSON,
		Seed:      42,
		LogLevel:  "info",
	}
}

// TestElection returns the three-candidate, two-seat election used across tests
func TestElection() models.ElectionInput {
	return models.ElectionInput{
		Name:       "Board election",
		Candidates: []string{"a", "b", "c"},
		Ballots: [][]string{
			{"a", "c", "b"},
			{"a", "b", "c"},
			{"a", "b", "c"},
		},
		Seats: 2,
	}
}

// AssertClose checks that two floats agree within Tolerance
func AssertClose(t *testing.T, what string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > Tolerance {
		t.Errorf("%s: expected %f, got %f", what, want, got)
	}
}

// AssertWinners checks the winners and their order
func AssertWinners(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected winners %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected winners %v, got %v", want, got)
		}
	}
}
