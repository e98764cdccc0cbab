// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stv tabulates ranked-choice, multi-winner elections with the Single
Transferable Vote and fractional (Gregory) surplus transfer.

# Usage

	res, err := stv.Tabulate(
		[]string{"a", "b", "c"},
		[][]string{{"a", "c", "b"}, {"a", "b", "c"}, {"a", "b", "c"}},
		2,
		nil, // process-wide randomness for tie breaks
	)

Pass a seeded *rand.Rand from math/rand/v2 to make tie breaks reproducible:

	res, err := stv.Tabulate(candidates, ballots, seats, rand.New(rand.NewPCG(1, 2)))

# Counting

The quota is the Droop quota without rounding:

	quota = validBallots/(seats+1) + 1

Empty ballots are abstentions and count toward nothing. Each round:

 1. Every remaining candidate's count is frozen.
 2. If the remaining and already elected candidates fit in the seats, all
    remaining candidates are elected.
 3. Otherwise every candidate at or above quota is elected. Their ballots
    move to the next remaining preference at weight × surplus/count.
 4. If nobody reached quota, the lowest candidate is eliminated and its
    ballots move on at full weight. Ties within 1e-6 are broken at random
    and every tied candidate is flagged IsDraw.

Ballots with no remaining preference are exhausted and their weight is
discarded. Counting stops once all seats are filled or no candidates remain.

# Errors

Malformed input wraps ErrInvalidInput. Broken internal invariants wrap
ErrAlgorithm. Tabulate has no side effects, so callers simply discard the
computation on error.
*/
package stv
