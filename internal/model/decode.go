// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMissingField is returned when a required key is absent from an input
// record.
var ErrMissingField = errors.New("missing required field")

// MissingFieldError wraps ErrMissingField with the dotted key path.
func MissingFieldError(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, path)
}

var (
	battingKeys = []string{"matches", "runs", "highest_score", "average", "strike_rate", "hundreds", "fifties"}
	bowlingKeys = []string{"balls", "runs", "wickets", "best_bowling_innings", "economy", "five_wickets"}
)

// DecodePlayerRecord converts a loosely typed document (as produced by a
// JSON or YAML decoder) into a PlayerRecord. Every top-level key and every
// per-format figure key must be present; scalar values are converted to
// text so numeric coercion happens in one place, at write time.
func DecodePlayerRecord(raw map[string]any) (PlayerRecord, error) {
	var rec PlayerRecord
	var err error

	if rec.Name, err = requireText(raw, "name", "name"); err != nil {
		return rec, err
	}
	if rec.Country, err = requireText(raw, "country", "country"); err != nil {
		return rec, err
	}
	if rec.Image, err = requireText(raw, "image", "image"); err != nil {
		return rec, err
	}
	if rec.Role, err = requireText(raw, "role", "role"); err != nil {
		return rec, err
	}

	batting, err := requireFormats(raw, "batting_stats")
	if err != nil {
		return rec, err
	}
	rec.Batting = make(map[string]BattingFigures, len(batting))
	for format, figures := range batting {
		f, err := pickText(figures, "batting_stats."+format, battingKeys)
		if err != nil {
			return rec, err
		}
		rec.Batting[format] = BattingFigures{
			Matches:      f["matches"],
			Runs:         f["runs"],
			HighestScore: f["highest_score"],
			Average:      f["average"],
			StrikeRate:   f["strike_rate"],
			Hundreds:     f["hundreds"],
			Fifties:      f["fifties"],
		}
	}

	bowling, err := requireFormats(raw, "bowling_stats")
	if err != nil {
		return rec, err
	}
	rec.Bowling = make(map[string]BowlingFigures, len(bowling))
	for format, figures := range bowling {
		f, err := pickText(figures, "bowling_stats."+format, bowlingKeys)
		if err != nil {
			return rec, err
		}
		rec.Bowling[format] = BowlingFigures{
			Balls:              f["balls"],
			Runs:               f["runs"],
			Wickets:            f["wickets"],
			BestBowlingInnings: f["best_bowling_innings"],
			Economy:            f["economy"],
			FiveWickets:        f["five_wickets"],
		}
	}

	return rec, nil
}

func requireText(raw map[string]any, key, path string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", MissingFieldError(path)
	}
	return scalarText(v, path)
}

// requireFormats returns the format -> figures mapping stored under key. A
// null value is treated as an empty mapping.
func requireFormats(raw map[string]any, key string) (map[string]map[string]any, error) {
	v, ok := raw[key]
	if !ok {
		return nil, MissingFieldError(key)
	}
	if v == nil {
		return nil, nil
	}
	m, ok := asStringMap(v)
	if !ok {
		return nil, fmt.Errorf("%s: expected a mapping of format to figures, got %T", key, v)
	}
	out := make(map[string]map[string]any, len(m))
	for format, figures := range m {
		fm, ok := asStringMap(figures)
		if !ok {
			return nil, fmt.Errorf("%s.%s: expected a mapping of figures, got %T", key, format, figures)
		}
		out[format] = fm
	}
	return out, nil
}

func pickText(figures map[string]any, path string, keys []string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		s, err := requireText(figures, k, path+"."+k)
		if err != nil {
			return nil, err
		}
		out[k] = s
	}
	return out, nil
}

func scalarText(v any, path string) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case fmt.Stringer:
		return t.String(), nil
	default:
		return "", fmt.Errorf("%s: expected a scalar value, got %T", path, v)
	}
}

// asStringMap accepts both map[string]any (encoding/json, yaml.v3) and
// map[any]any documents.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
