// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model holds the entities persisted by the player stats store and
// the input record shape callers hand to it.
package model

import "fmt"

// Player is a row of the players table.
type Player struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	ImageURL string `json:"image_url"`
	Role     string `json:"role"`
}

// String returns the player name with the country in brackets when known.
func (p Player) String() string {
	if p.Country == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Country)
}

// BattingRecord is a row of the batting_stats table. Fields follow the
// declared column order.
type BattingRecord struct {
	ID           int64   `json:"id"`
	PlayerID     int64   `json:"player_id"`
	Format       string  `json:"format"`
	Matches      int64   `json:"matches"`
	Runs         int64   `json:"runs"`
	HighestScore string  `json:"highest_score"` // kept as text, may carry a "*" not-out marker
	Average      float64 `json:"average"`
	StrikeRate   float64 `json:"strike_rate"`
	Hundreds     int64   `json:"hundreds"`
	Fifties      int64   `json:"fifties"`
}

// BowlingRecord is a row of the bowling_stats table.
type BowlingRecord struct {
	ID                 int64   `json:"id"`
	PlayerID           int64   `json:"player_id"`
	Format             string  `json:"format"`
	Balls              int64   `json:"balls"`
	Runs               int64   `json:"runs"`
	Wickets            int64   `json:"wickets"`
	BestBowlingInnings string  `json:"best_bowling_innings"` // e.g. "5/20"
	Economy            float64 `json:"economy"`
	FiveWickets        int64   `json:"five_wickets"`
}

// PlayerStats is the full record returned by a lookup.
type PlayerStats struct {
	Player  Player          `json:"player"`
	Batting []BattingRecord `json:"batting_stats"`
	Bowling []BowlingRecord `json:"bowling_stats"`
}

// BattingFigures carries one format's batting numbers as scraped text.
type BattingFigures struct {
	Matches      string `json:"matches" yaml:"matches"`
	Runs         string `json:"runs" yaml:"runs"`
	HighestScore string `json:"highest_score" yaml:"highest_score"`
	Average      string `json:"average" yaml:"average"`
	StrikeRate   string `json:"strike_rate" yaml:"strike_rate"`
	Hundreds     string `json:"hundreds" yaml:"hundreds"`
	Fifties      string `json:"fifties" yaml:"fifties"`
}

// BowlingFigures carries one format's bowling numbers as scraped text.
type BowlingFigures struct {
	Balls              string `json:"balls" yaml:"balls"`
	Runs               string `json:"runs" yaml:"runs"`
	Wickets            string `json:"wickets" yaml:"wickets"`
	BestBowlingInnings string `json:"best_bowling_innings" yaml:"best_bowling_innings"`
	Economy            string `json:"economy" yaml:"economy"`
	FiveWickets        string `json:"five_wickets" yaml:"five_wickets"`
}

// PlayerRecord is the input accepted by the store's upsert. Batting and
// Bowling are keyed by format label ("Test", "ODI", "T20", ...).
type PlayerRecord struct {
	Name    string                    `json:"name" yaml:"name"`
	Country string                    `json:"country" yaml:"country"`
	Image   string                    `json:"image" yaml:"image"`
	Role    string                    `json:"role" yaml:"role"`
	Batting map[string]BattingFigures `json:"batting_stats" yaml:"batting_stats"`
	Bowling map[string]BowlingFigures `json:"bowling_stats" yaml:"bowling_stats"`
}

// Validate reports ErrMissingField when the record has no name.
func (r PlayerRecord) Validate() error {
	if r.Name == "" {
		return MissingFieldError("name")
	}
	return nil
}
