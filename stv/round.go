// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stv

import "math"

// drawEpsilon is how close two counts must be to count as a tie.
const drawEpsilon = 1e-6

type actionKind int

const (
	actionElect actionKind = iota
	actionForceAccept
	actionEliminate
)

// roundAction is everything decided about a round before the ledger changes.
type roundAction struct {
	kind    actionKind
	elected map[string]bool
	dropped string
	draw    map[string]bool
}

// decide picks the round's action from the frozen counts.
func decide(counts []tally, quota float64, forced bool, rng Rand) (roundAction, error) {
	if forced {
		a := roundAction{kind: actionForceAccept, elected: make(map[string]bool, len(counts))}
		for _, t := range counts {
			a.elected[t.name] = true
		}
		return a, nil
	}

	elected := make(map[string]bool)
	for _, t := range counts {
		if t.count >= quota {
			elected[t.name] = true
		}
	}
	if len(elected) > 0 {
		return roundAction{kind: actionElect, elected: elected}, nil
	}

	return decideElimination(counts, rng)
}

func decideElimination(counts []tally, rng Rand) (roundAction, error) {
	if len(counts) == 0 {
		return roundAction{}, algorithmError("no candidates left to eliminate")
	}

	lowest := math.Inf(1)
	for _, t := range counts {
		lowest = math.Min(lowest, t.count)
	}

	var tied []string
	for _, t := range counts {
		if t.count-lowest <= drawEpsilon {
			tied = append(tied, t.name)
		}
	}

	a := roundAction{kind: actionEliminate, dropped: tied[0]}
	if len(tied) > 1 {
		a.dropped = tied[rng.IntN(len(tied))]
		a.draw = make(map[string]bool, len(tied))
		for _, name := range tied {
			a.draw[name] = true
		}
	}
	return a, nil
}

// apply changes the ledger according to the action. counts must be the
// snapshot the action was decided from.
func (a roundAction) apply(l *ledger, counts []tally, quota float64) {
	if a.kind == actionEliminate {
		l.transfer(l.remove(a.dropped), 1.0)
		return
	}

	// Every elected candidate leaves before any surplus moves.
	removed := make(map[string][]fragment, len(a.elected))
	for _, t := range counts {
		if a.elected[t.name] {
			removed[t.name] = l.remove(t.name)
		}
	}
	for _, t := range counts {
		frags, ok := removed[t.name]
		if !ok {
			continue
		}
		surplus := math.Max(0, t.count-quota)
		l.retained += t.count - surplus
		if t.count <= 0 || surplus == 0 {
			continue
		}
		l.transfer(frags, surplus/t.count)
	}
}

// result records the round from the counts it started with.
func (a roundAction) result(round int, counts []tally) RoundResult {
	rr := RoundResult{Round: round, CandidateResults: []CandidateResult{}}
	for _, t := range counts {
		if a.kind == actionEliminate && t.name == a.dropped {
			rr.DroppedCandidate = &DroppedCandidate{
				Name:      t.name,
				VoteCount: t.count,
				IsDraw:    a.draw[t.name],
			}
			continue
		}
		rr.CandidateResults = append(rr.CandidateResults, CandidateResult{
			Name:       t.name,
			VoteCount:  t.count,
			IsSelected: a.elected[t.name],
			IsDraw:     a.draw[t.name],
		})
	}
	return rr
}
