// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report reads election documents and writes result snapshots.

# Input

	in, err := report.ReadElection(r)

Unknown fields are rejected so a typo in a field name fails loudly.

# Output

	report.WriteJSON(w, snapshot)
	report.WriteText(w, snapshot)

Text output lists each round with its candidates, vote counts, selected and
dropped candidates, and draw flags. When the snapshot hides vote counts,
text output shows "-" in place of counts and JSON output writes zeros.

# Timing

Timed wraps a step with slog logging:

	err := report.Timed("tally", func() error { ... })
*/
package report
