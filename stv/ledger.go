// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stv

import "slices"

// fragment is the share of one ballot currently credited to a candidate.
type fragment struct {
	weight float64
	ballot []string
}

// tally is a candidate's count frozen at the start of a round.
type tally struct {
	name  string
	count float64
}

// ledger maps each remaining candidate to the fragments it holds.
// Candidates keep the order they were supplied in.
type ledger struct {
	order []string
	held  map[string][]fragment

	// retained is weight kept by elected candidates, exhausted is weight
	// with no reachable next preference.
	retained  float64
	exhausted float64
}

func newLedger(candidates []string, ballots [][]string) *ledger {
	l := &ledger{
		order: slices.Clone(candidates),
		held:  make(map[string][]fragment, len(candidates)),
	}
	for _, c := range candidates {
		l.held[c] = []fragment{}
	}
	for _, b := range ballots {
		if len(b) == 0 {
			continue
		}
		l.held[b[0]] = append(l.held[b[0]], fragment{weight: 1.0, ballot: b})
	}
	return l
}

func (l *ledger) len() int {
	return len(l.order)
}

func (l *ledger) has(name string) bool {
	_, ok := l.held[name]
	return ok
}

// counts returns every remaining candidate's summed fragment weight.
func (l *ledger) counts() []tally {
	out := make([]tally, 0, len(l.order))
	for _, name := range l.order {
		var sum float64
		for _, f := range l.held[name] {
			sum += f.weight
		}
		out = append(out, tally{name: name, count: sum})
	}
	return out
}

// remove takes a candidate out of the ledger and returns its fragments.
func (l *ledger) remove(name string) []fragment {
	frags := l.held[name]
	delete(l.held, name)
	l.order = slices.DeleteFunc(l.order, func(n string) bool { return n == name })
	return frags
}

// nextPreference finds the first candidate on the ballot still in the ledger.
func (l *ledger) nextPreference(ballot []string) (string, bool) {
	for _, name := range ballot {
		if l.has(name) {
			return name, true
		}
	}
	return "", false
}

// transfer moves fragments to their next preference, multiplying each
// weight by ratio. Fragments with nowhere to go are exhausted.
func (l *ledger) transfer(frags []fragment, ratio float64) {
	for _, f := range frags {
		w := f.weight * ratio
		if w <= 0 {
			continue
		}
		next, ok := l.nextPreference(f.ballot)
		if !ok {
			l.exhausted += w
			continue
		}
		l.held[next] = append(l.held[next], fragment{weight: w, ballot: f.ballot})
	}
}

// heldWeight returns the total weight still credited to remaining candidates.
func (l *ledger) heldWeight() float64 {
	var sum float64
	for _, frags := range l.held {
		for _, f := range frags {
			sum += f.weight
		}
	}
	return sum
}

// balance is the total weight accounted for. It must equal the number of
// valid ballots at every round boundary.
func (l *ledger) balance() float64 {
	return l.heldWeight() + l.retained + l.exhausted
}
