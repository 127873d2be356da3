// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/toeirei/cricketstats/internal/model"
)

// newFileStore returns an initialized SQLite store backed by a file in a
// per-test temp directory.
func newFileStore(t *testing.T, opts Options) (*BunStore, string) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "players.db")
	s, err := New("sqlite", dsn, opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, dsn
}

// kumarRecord is the worked example used across the store tests.
func kumarRecord() model.PlayerRecord {
	return model.PlayerRecord{
		Name:    "A Kumar",
		Country: "India",
		Image:   "x.jpg",
		Role:    "Bowler",
		Batting: map[string]model.BattingFigures{
			"ODI": {
				Matches:      "10",
				Runs:         "250",
				HighestScore: "45*",
				Average:      "25.0",
				StrikeRate:   "88.5",
				Hundreds:     "0",
				Fifties:      "2",
			},
		},
		Bowling: map[string]model.BowlingFigures{},
	}
}
