package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-pick-stv/cliparse"
	"github.com/danielhkuo/quickly-pick-stv/models"
	"github.com/danielhkuo/quickly-pick-stv/stv"
	"github.com/danielhkuo/quickly-pick-stv/testutil"
)

const electionDoc = `{
	"name": "Board election",
	"candidates": ["a", "b", "c"],
	"ballots": [["a", "c", "b"], ["a", "b", "c"], ["a", "b", "c"]],
	"seats": 2
}`

func TestRun_JSONFromStdin(t *testing.T) {
	var out bytes.Buffer
	if err := run(testutil.GetTestConfig(), strings.NewReader(electionDoc), &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var snapshot models.ResultSnapshot
	if err := json.Unmarshal(out.Bytes(), &snapshot); err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	testutil.AssertWinners(t, snapshot.Winners, "a", "b")
	if snapshot.Method != models.MethodSTV {
		t.Errorf("Expected method stv, got %q", snapshot.Method)
	}
}

func TestRun_TextFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "election.json")
	if err := os.WriteFile(path, []byte(electionDoc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := testutil.GetTestConfig()
	cfg.InputPath = path
	cfg.Format = cliparse.FormatText
	cfg.HideVoteCounts = true

	var out bytes.Buffer
	if err := run(cfg, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !strings.Contains(out.String(), "Winners: a, b") {
		t.Errorf("Expected winners in output:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Quota:") {
		t.Errorf("Expected hidden counts:\n%s", out.String())
	}
}

func TestRun_InvalidElection(t *testing.T) {
	doc := `{"candidates": ["a", "a"], "ballots": [], "seats": 1}`

	var out bytes.Buffer
	err := run(testutil.GetTestConfig(), strings.NewReader(doc), &out)
	if !errors.Is(err, stv.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no report on failure, got %s", out.String())
	}
}

func TestWriteFailure_HidesAlgorithmDetail(t *testing.T) {
	var out bytes.Buffer
	writeFailure(&out, fmt.Errorf("failed to tabulate: %w", stv.ErrAlgorithm))

	var decoded models.ErrorResponse
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Error != "Internal error" || strings.Contains(decoded.Message, "algorithm") {
		t.Errorf("Expected generic failure, got %+v", decoded)
	}
}
