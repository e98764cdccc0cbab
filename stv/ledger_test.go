// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stv

import (
	"math"
	"testing"
)

func assertBalance(t *testing.T, l *ledger, want float64) {
	t.Helper()
	if got := l.balance(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected balance %f, got %f", want, got)
	}
}

func TestNewLedger_CreditsFirstPreference(t *testing.T) {
	l := newLedger([]string{"a", "b", "c"}, [][]string{{"b", "a"}, {}, {"b"}, {"c", "a"}})

	counts := l.counts()
	want := []tally{{"a", 0}, {"b", 2}, {"c", 1}}
	if len(counts) != len(want) {
		t.Fatalf("Expected %d counts, got %d", len(want), len(counts))
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("Expected %+v, got %+v", want[i], counts[i])
		}
	}
	assertBalance(t, l, 3)
}

func TestLedger_EliminationTransfersFullWeight(t *testing.T) {
	l := newLedger([]string{"a", "b", "c"}, [][]string{{"b", "a"}, {"b"}, {"c", "b", "a"}})

	l.transfer(l.remove("b"), 1.0)

	if l.has("b") {
		t.Fatal("b should be removed")
	}
	counts := l.counts()
	if counts[0].name != "a" || counts[0].count != 1 {
		t.Errorf("Expected a=1, got %+v", counts[0])
	}
	if l.exhausted != 1 {
		t.Errorf("Expected 1 exhausted ballot, got %f", l.exhausted)
	}
	assertBalance(t, l, 3)
}

func TestLedger_SurplusRescalesEveryFragment(t *testing.T) {
	ballots := [][]string{{"a", "b"}, {"a", "c"}, {"a", "b"}, {"a"}}
	l := newLedger([]string{"a", "b", "c"}, ballots)
	counts := l.counts()

	act := roundAction{kind: actionElect, elected: map[string]bool{"a": true}}
	act.apply(l, counts, 3.0)

	after := l.counts()
	if after[0].name != "b" || math.Abs(after[0].count-0.5) > 1e-9 {
		t.Errorf("Expected b=0.5, got %+v", after[0])
	}
	if after[1].name != "c" || math.Abs(after[1].count-0.25) > 1e-9 {
		t.Errorf("Expected c=0.25, got %+v", after[1])
	}
	if math.Abs(l.retained-3.0) > 1e-9 {
		t.Errorf("Expected 3.0 retained, got %f", l.retained)
	}
	if math.Abs(l.exhausted-0.25) > 1e-9 {
		t.Errorf("Expected 0.25 exhausted, got %f", l.exhausted)
	}
	assertBalance(t, l, 4)
}

func TestLedger_SimultaneousWinnersLeaveBeforeTransfer(t *testing.T) {
	ballots := [][]string{{"a", "b"}, {"a", "b"}, {"a", "c"}, {"b", "a"}, {"b", "a"}, {"b", "c"}}
	l := newLedger([]string{"a", "b", "c"}, ballots)
	counts := l.counts()

	act := roundAction{kind: actionElect, elected: map[string]bool{"a": true, "b": true}}
	act.apply(l, counts, 2.0)

	after := l.counts()
	if len(after) != 1 || after[0].name != "c" {
		t.Fatalf("Expected only c left, got %+v", after)
	}
	// One third of each winner's surplus of 1.0 reaches c
	if math.Abs(after[0].count-2.0/3.0) > 1e-9 {
		t.Errorf("Expected c=2/3, got %f", after[0].count)
	}
	assertBalance(t, l, 6)
}

func TestLedger_ExactQuotaTransfersNothing(t *testing.T) {
	l := newLedger([]string{"a", "b"}, [][]string{{"a", "b"}, {"a", "b"}})
	counts := l.counts()

	act := roundAction{kind: actionElect, elected: map[string]bool{"a": true}}
	act.apply(l, counts, 2.0)

	if len(l.held["b"]) != 0 {
		t.Errorf("Expected no zero-weight fragments for b, got %d", len(l.held["b"]))
	}
	assertBalance(t, l, 2)
}
