// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/toeirei/cricketstats/internal/coerce"
	"github.com/toeirei/cricketstats/internal/model"
	"github.com/uptrace/bun"
)

// PlayerModel maps the `players` table for Bun queries.
type PlayerModel struct {
	bun.BaseModel `bun:"table:players"`
	ID            int64          `bun:"id,pk,autoincrement"`
	Name          string         `bun:"name,notnull"`
	Country       sql.NullString `bun:"country"`
	ImageURL      sql.NullString `bun:"image_url"`
	Role          sql.NullString `bun:"role"`
}

// BattingStatModel maps the `batting_stats` table.
type BattingStatModel struct {
	bun.BaseModel `bun:"table:batting_stats"`
	ID            int64          `bun:"id,pk,autoincrement"`
	PlayerID      int64          `bun:"player_id"`
	Format        string         `bun:"format"`
	Matches       int64          `bun:"matches"`
	Runs          int64          `bun:"runs"`
	HighestScore  sql.NullString `bun:"highest_score"`
	Average       float64        `bun:"average"`
	StrikeRate    float64        `bun:"strike_rate"`
	Hundreds      int64          `bun:"hundreds"`
	Fifties       int64          `bun:"fifties"`
}

// BowlingStatModel maps the `bowling_stats` table.
type BowlingStatModel struct {
	bun.BaseModel      `bun:"table:bowling_stats"`
	ID                 int64          `bun:"id,pk,autoincrement"`
	PlayerID           int64          `bun:"player_id"`
	Format             string         `bun:"format"`
	Balls              int64          `bun:"balls"`
	Runs               int64          `bun:"runs"`
	Wickets            int64          `bun:"wickets"`
	BestBowlingInnings sql.NullString `bun:"best_bowling_innings"`
	Economy            float64        `bun:"economy"`
	FiveWickets        int64          `bun:"five_wickets"`
}

func text(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

// InsertPlayerIgnoreBun inserts the player row unless the name is already
// taken, in which case nothing is written and no error is returned.
func InsertPlayerIgnoreBun(ctx context.Context, idb bun.IDB, dbType string, rec model.PlayerRecord) error {
	q := idb.NewInsert().Model(&PlayerModel{
		Name:     rec.Name,
		Country:  text(rec.Country),
		ImageURL: text(rec.Image),
		Role:     text(rec.Role),
	})
	if dbType == "mysql" {
		q = q.Ignore()
	} else {
		q = q.On("CONFLICT (name) DO NOTHING").Returning("NULL")
	}
	if _, err := q.Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert player %q: %w", rec.Name, err)
	}
	return nil
}

// PlayerIDByNameBun resolves a player's identifier. It returns ErrNotFound
// when no such player exists.
func PlayerIDByNameBun(ctx context.Context, idb bun.IDB, name string) (int64, error) {
	var id int64
	err := idb.NewSelect().Model((*PlayerModel)(nil)).Column("id").Where("name = ?", name).Limit(1).Scan(ctx, &id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

// InsertBattingStatsBun appends one batting_stats row per format, in format
// label order. Numeric figures go through coerce; the highest score is kept
// verbatim.
func InsertBattingStatsBun(ctx context.Context, idb bun.IDB, playerID int64, figures map[string]model.BattingFigures) error {
	if len(figures) == 0 {
		return nil
	}
	rows := make([]BattingStatModel, 0, len(figures))
	for _, format := range slices.Sorted(maps.Keys(figures)) {
		f := figures[format]
		rows = append(rows, BattingStatModel{
			PlayerID:     playerID,
			Format:       format,
			Matches:      coerce.Int(f.Matches),
			Runs:         coerce.Int(f.Runs),
			HighestScore: text(f.HighestScore),
			Average:      coerce.Float(f.Average),
			StrikeRate:   coerce.Float(f.StrikeRate),
			Hundreds:     coerce.Int(f.Hundreds),
			Fifties:      coerce.Int(f.Fifties),
		})
	}
	if _, err := idb.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert batting stats: %w", err)
	}
	return nil
}

// InsertBowlingStatsBun appends one bowling_stats row per format.
func InsertBowlingStatsBun(ctx context.Context, idb bun.IDB, playerID int64, figures map[string]model.BowlingFigures) error {
	if len(figures) == 0 {
		return nil
	}
	rows := make([]BowlingStatModel, 0, len(figures))
	for _, format := range slices.Sorted(maps.Keys(figures)) {
		f := figures[format]
		rows = append(rows, BowlingStatModel{
			PlayerID:           playerID,
			Format:             format,
			Balls:              coerce.Int(f.Balls),
			Runs:               coerce.Int(f.Runs),
			Wickets:            coerce.Int(f.Wickets),
			BestBowlingInnings: text(f.BestBowlingInnings),
			Economy:            coerce.Float(f.Economy),
			FiveWickets:        coerce.Int(f.FiveWickets),
		})
	}
	if _, err := idb.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert bowling stats: %w", err)
	}
	return nil
}

// GetPlayerStatsBun loads a player and all of their stat rows by exact name.
func GetPlayerStatsBun(ctx context.Context, idb bun.IDB, name string) (*model.PlayerStats, error) {
	var pm PlayerModel
	if err := idb.NewSelect().Model(&pm).Where("name = ?", name).Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load player %q: %w", name, err)
	}

	var batting []BattingStatModel
	if err := idb.NewSelect().Model(&batting).Where("player_id = ?", pm.ID).OrderExpr("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load batting stats: %w", err)
	}
	var bowling []BowlingStatModel
	if err := idb.NewSelect().Model(&bowling).Where("player_id = ?", pm.ID).OrderExpr("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load bowling stats: %w", err)
	}

	out := &model.PlayerStats{
		Player:  playerModelToModel(pm),
		Batting: make([]model.BattingRecord, 0, len(batting)),
		Bowling: make([]model.BowlingRecord, 0, len(bowling)),
	}
	for _, b := range batting {
		out.Batting = append(out.Batting, battingModelToModel(b))
	}
	for _, b := range bowling {
		out.Bowling = append(out.Bowling, bowlingModelToModel(b))
	}
	return out, nil
}

func playerModelToModel(p PlayerModel) model.Player {
	return model.Player{
		ID:       p.ID,
		Name:     p.Name,
		Country:  p.Country.String,
		ImageURL: p.ImageURL.String,
		Role:     p.Role.String,
	}
}

func battingModelToModel(b BattingStatModel) model.BattingRecord {
	return model.BattingRecord{
		ID:           b.ID,
		PlayerID:     b.PlayerID,
		Format:       b.Format,
		Matches:      b.Matches,
		Runs:         b.Runs,
		HighestScore: b.HighestScore.String,
		Average:      b.Average,
		StrikeRate:   b.StrikeRate,
		Hundreds:     b.Hundreds,
		Fifties:      b.Fifties,
	}
}

func bowlingModelToModel(b BowlingStatModel) model.BowlingRecord {
	return model.BowlingRecord{
		ID:                 b.ID,
		PlayerID:           b.PlayerID,
		Format:             b.Format,
		Balls:              b.Balls,
		Runs:               b.Runs,
		Wickets:            b.Wickets,
		BestBowlingInnings: b.BestBowlingInnings.String,
		Economy:            b.Economy,
		FiveWickets:        b.FiveWickets,
	}
}

// UpsertPlayer writes rec. By default the player row and the stat rows are
// committed separately; with Options.AtomicUpsert they share a transaction.
func (s *BunStore) UpsertPlayer(ctx context.Context, rec model.PlayerRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	writeStats := func(ctx context.Context, tx bun.Tx) error {
		id, err := PlayerIDByNameBun(ctx, tx, rec.Name)
		if err != nil {
			return fmt.Errorf("failed to resolve player id for %q: %w", rec.Name, err)
		}
		if err := InsertBattingStatsBun(ctx, tx, id, rec.Batting); err != nil {
			return err
		}
		return InsertBowlingStatsBun(ctx, tx, id, rec.Bowling)
	}

	return s.withDB(func(bdb *bun.DB) error {
		if s.opts.AtomicUpsert {
			return WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
				if err := InsertPlayerIgnoreBun(ctx, tx, s.dbType, rec); err != nil {
					return err
				}
				return writeStats(ctx, tx)
			})
		}

		if err := WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
			return InsertPlayerIgnoreBun(ctx, tx, s.dbType, rec)
		}); err != nil {
			return err
		}
		dbLogf("db: player %q committed", rec.Name)
		return WithTx(ctx, bdb, writeStats)
	})
}

// GetPlayer returns the player named name with all stat rows, or ErrNotFound.
func (s *BunStore) GetPlayer(ctx context.Context, name string) (*model.PlayerStats, error) {
	var out *model.PlayerStats
	err := s.withDB(func(bdb *bun.DB) error {
		var err error
		out, err = GetPlayerStatsBun(ctx, bdb, name)
		return err
	})
	return out, err
}
