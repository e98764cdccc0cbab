// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-pick-stv/models"
	"github.com/danielhkuo/quickly-pick-stv/stv"
)

// Timed runs fn and logs how long it took
func Timed(name string, fn func() error) error {
	start := time.Now()

	slog.Debug("step started", "step", name)

	err := fn()

	duration := time.Since(start)
	slog.Info("step completed",
		"step", name,
		"duration_ms", duration.Milliseconds(),
		"ok", err == nil,
	)
	return err
}

// ReadElection decodes an election document, rejecting unknown fields
func ReadElection(r io.Reader) (models.ElectionInput, error) {
	var in models.ElectionInput
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return models.ElectionInput{}, fmt.Errorf("failed to parse election: %w", err)
	}
	return in, nil
}

// WriteJSON writes the snapshot as indented JSON. When counts are hidden,
// every vote count and the quota are written as zero.
func WriteJSON(w io.Writer, snapshot models.ResultSnapshot) error {
	if snapshot.HideVoteCounts {
		snapshot = redact(snapshot)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// WriteError writes a JSON error document
func WriteError(w io.Writer, kind string, err error) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(models.ErrorResponse{
		Error:   kind,
		Message: err.Error(),
	})
}

// WriteText writes a round-by-round breakdown for people to read
func WriteText(w io.Writer, snapshot models.ResultSnapshot) error {
	hide := snapshot.HideVoteCounts
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	title := snapshot.Name
	if title == "" {
		title = "Election"
	}
	fmt.Fprintf(tw, "%s: %s %s, %s %s (%s valid)\n",
		title,
		humanize.Comma(int64(snapshot.Seats)), plural(snapshot.Seats, "seat"),
		humanize.Comma(int64(snapshot.BallotCount)), plural(snapshot.BallotCount, "ballot"),
		humanize.Comma(int64(snapshot.ValidBallotCount)),
	)
	if !hide {
		fmt.Fprintf(tw, "Quota: %s\n", formatCount(snapshot.Quota))
	}

	for _, rr := range snapshot.RoundResults {
		fmt.Fprintf(tw, "\n%s round\n", humanize.Ordinal(rr.Round))
		for _, cr := range rr.CandidateResults {
			status := ""
			if cr.IsSelected {
				status = "selected"
			}
			writeRow(tw, cr.Name, cr.VoteCount, cr.IsDraw, status, hide)
		}
		if d := rr.DroppedCandidate; d != nil {
			writeRow(tw, d.Name, d.VoteCount, d.IsDraw, "dropped", hide)
		}
	}

	fmt.Fprintf(tw, "\nWinners: %s\n", strings.Join(snapshot.Winners, ", "))
	fmt.Fprintf(tw, "Snapshot %s, inputs %s\n", snapshot.ID, snapshot.InputsHash)

	return tw.Flush()
}

func writeRow(w io.Writer, name string, count float64, draw bool, status string, hide bool) {
	votes := formatCount(count)
	if hide {
		votes = "-"
	}
	if draw {
		status = strings.TrimSpace(status + " (draw)")
	}
	fmt.Fprintf(w, "  %s\t%s\t%s\n", name, votes, status)
}

func formatCount(v float64) string {
	return humanize.FormatFloat("#,###.####", v)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// redact returns a copy of the snapshot with every vote count zeroed
func redact(snapshot models.ResultSnapshot) models.ResultSnapshot {
	rounds := make([]stv.RoundResult, len(snapshot.RoundResults))
	for i, rr := range snapshot.RoundResults {
		results := make([]stv.CandidateResult, len(rr.CandidateResults))
		for j, cr := range rr.CandidateResults {
			cr.VoteCount = 0
			results[j] = cr
		}
		rr.CandidateResults = results
		if rr.DroppedCandidate != nil {
			dropped := *rr.DroppedCandidate
			dropped.VoteCount = 0
			rr.DroppedCandidate = &dropped
		}
		rounds[i] = rr
	}
	snapshot.RoundResults = rounds
	snapshot.Quota = 0
	return snapshot
}
