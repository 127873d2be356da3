// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"errors"
	"strings"
	"testing"
)

func TestPlayerString(t *testing.T) {
	p := Player{Name: "A Kumar"}
	if got := p.String(); got != "A Kumar" {
		t.Errorf("unexpected Player.String(): %q", got)
	}

	p.Country = "India"
	if got := p.String(); got != "A Kumar (India)" {
		t.Errorf("unexpected Player.String() with country: %q", got)
	}
}

func TestPlayerRecordValidate(t *testing.T) {
	if err := (PlayerRecord{}).Validate(); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for empty name, got %v", err)
	}
	if err := (PlayerRecord{Name: "x"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func fullRaw() map[string]any {
	return map[string]any{
		"name":    "A Kumar",
		"country": "India",
		"image":   "x.jpg",
		"role":    "Bowler",
		"batting_stats": map[string]any{
			"ODI": map[string]any{
				"matches": "10", "runs": 250, "highest_score": "45*",
				"average": 25.0, "strike_rate": "88.5", "hundreds": "0", "fifties": "2",
			},
		},
		"bowling_stats": map[string]any{},
	}
}

func TestDecodePlayerRecord_Full(t *testing.T) {
	rec, err := DecodePlayerRecord(fullRaw())
	if err != nil {
		t.Fatalf("DecodePlayerRecord: %v", err)
	}
	if rec.Name != "A Kumar" || rec.Country != "India" || rec.Image != "x.jpg" || rec.Role != "Bowler" {
		t.Fatalf("unexpected profile fields: %+v", rec)
	}
	odi, ok := rec.Batting["ODI"]
	if !ok {
		t.Fatalf("missing ODI batting figures")
	}
	if odi.Runs != "250" {
		t.Errorf("numeric value should become text, got %q", odi.Runs)
	}
	if odi.Average != "25" {
		t.Errorf("float value should become text, got %q", odi.Average)
	}
	if odi.HighestScore != "45*" {
		t.Errorf("highest score should be verbatim, got %q", odi.HighestScore)
	}
	if len(rec.Bowling) != 0 {
		t.Errorf("expected no bowling figures, got %d", len(rec.Bowling))
	}
}

func TestDecodePlayerRecord_MissingKeys(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(m map[string]any)
		path   string
	}{
		{"name", func(m map[string]any) { delete(m, "name") }, "name"},
		{"country", func(m map[string]any) { delete(m, "country") }, "country"},
		{"image", func(m map[string]any) { delete(m, "image") }, "image"},
		{"role", func(m map[string]any) { delete(m, "role") }, "role"},
		{"batting map", func(m map[string]any) { delete(m, "batting_stats") }, "batting_stats"},
		{"bowling map", func(m map[string]any) { delete(m, "bowling_stats") }, "bowling_stats"},
		{"batting figure", func(m map[string]any) {
			delete(m["batting_stats"].(map[string]any)["ODI"].(map[string]any), "fifties")
		}, "batting_stats.ODI.fifties"},
		{"bowling figure", func(m map[string]any) {
			m["bowling_stats"] = map[string]any{"T20": map[string]any{"balls": "12"}}
		}, "bowling_stats.T20.runs"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			raw := fullRaw()
			c.mutate(raw)
			_, err := DecodePlayerRecord(raw)
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
			if !strings.Contains(err.Error(), c.path) {
				t.Fatalf("expected error to name %q, got %v", c.path, err)
			}
		})
	}
}

func TestDecodePlayerRecord_NullValues(t *testing.T) {
	raw := fullRaw()
	raw["country"] = nil
	raw["bowling_stats"] = nil
	rec, err := DecodePlayerRecord(raw)
	if err != nil {
		t.Fatalf("DecodePlayerRecord: %v", err)
	}
	if rec.Country != "" {
		t.Errorf("expected empty country for null, got %q", rec.Country)
	}
	if len(rec.Bowling) != 0 {
		t.Errorf("expected empty bowling map, got %v", rec.Bowling)
	}
}

func TestDecodePlayerRecord_WrongShapes(t *testing.T) {
	raw := fullRaw()
	raw["batting_stats"] = []any{"ODI"}
	if _, err := DecodePlayerRecord(raw); err == nil || errors.Is(err, ErrMissingField) {
		t.Fatalf("expected a shape error, got %v", err)
	}

	raw = fullRaw()
	raw["name"] = []any{"a", "b"}
	if _, err := DecodePlayerRecord(raw); err == nil {
		t.Fatalf("expected error for non-scalar name")
	}

	raw = fullRaw()
	raw["batting_stats"] = map[any]any{"Test": map[any]any{
		"matches": 1, "runs": 2, "highest_score": "2", "average": "2", "strike_rate": "50", "hundreds": 0, "fifties": 0,
	}}
	rec, err := DecodePlayerRecord(raw)
	if err != nil {
		t.Fatalf("map[any]any documents should decode: %v", err)
	}
	if rec.Batting["Test"].Matches != "1" {
		t.Fatalf("unexpected matches %q", rec.Batting["Test"].Matches)
	}
}
