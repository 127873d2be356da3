// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"

	"github.com/toeirei/cricketstats/internal/model"
)

// Store defines the player stats operations. The bun-backed implementation
// supports SQLite, PostgreSQL and MySQL.
type Store interface {
	// Initialize ensures the players, batting_stats and bowling_stats tables
	// exist. It is safe to call repeatedly.
	Initialize(ctx context.Context) error

	// UpsertPlayer inserts the player unless a player with the same name
	// exists, then appends one batting row and one bowling row per supplied
	// format.
	UpsertPlayer(ctx context.Context, rec model.PlayerRecord) error

	// GetPlayer returns the player with the exact name and all of their
	// stat rows, or ErrNotFound.
	GetPlayer(ctx context.Context, name string) (*model.PlayerStats, error)

	// Close releases any handle the store keeps between calls.
	Close() error
}

// Options tune a store.
type Options struct {
	// AtomicUpsert writes the player row and its stat rows in one
	// transaction instead of two.
	AtomicUpsert bool
}
