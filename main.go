package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/danielhkuo/quickly-pick-stv/cliparse"
	"github.com/danielhkuo/quickly-pick-stv/models"
	"github.com/danielhkuo/quickly-pick-stv/report"
	"github.com/danielhkuo/quickly-pick-stv/stv"
	"github.com/danielhkuo/quickly-pick-stv/tally"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(2)
	}

	level, _ := cliparse.ParseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		slog.Error("count failed", "error", err)
		writeFailure(os.Stdout, err)
		os.Exit(1)
	}
}

func run(cfg cliparse.Config, stdin io.Reader, stdout io.Writer) error {
	// Read the election
	var in models.ElectionInput
	err := report.Timed("read", func() error {
		r := stdin
		if cfg.InputPath != "-" {
			f, openErr := os.Open(cfg.InputPath)
			if openErr != nil {
				return openErr
			}
			defer f.Close()
			r = f
		}
		var readErr error
		in, readErr = report.ReadElection(r)
		return readErr
	})
	if err != nil {
		return err
	}
	if cfg.HideVoteCounts {
		in.HideVoteCounts = true
	}

	slog.Info("election loaded",
		"name", in.Name,
		"candidates", len(in.Candidates),
		"ballots", len(in.Ballots),
		"seats", in.Seats,
	)

	// Count
	tallier := tally.NewTallier(cfg)
	var snapshot models.ResultSnapshot
	err = report.Timed("tally", func() error {
		var tallyErr error
		snapshot, tallyErr = tallier.Tally(in)
		return tallyErr
	})
	if err != nil {
		return err
	}

	// Report
	if cfg.Format == cliparse.FormatText {
		return report.WriteText(stdout, snapshot)
	}
	return report.WriteJSON(stdout, snapshot)
}

// writeFailure reports an error on stdout. Algorithm errors get a generic
// message; the detail is only logged.
func writeFailure(w io.Writer, err error) {
	switch {
	case errors.Is(err, stv.ErrInvalidInput):
		report.WriteError(w, "Invalid input", err)
	case errors.Is(err, stv.ErrAlgorithm):
		report.WriteError(w, "Internal error", errors.New("the count could not be completed"))
	default:
		report.WriteError(w, "Error", err)
	}
}
