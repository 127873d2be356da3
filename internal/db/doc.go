// Package db contains the player stats store: schema setup, the
// insert-or-ignore upsert of a player with per-format batting and bowling
// rows, and point lookup by player name.
//
// Connection model
//   - Every Store operation opens its own handle, runs its statements and
//     closes the handle before returning, on success and on error. Nothing is
//     pooled across calls.
//   - In-memory SQLite DSNs (":memory:", "mode=memory") are the exception: the
//     database would vanish with its last connection, so the store keeps one
//     handle until Close is called.
//
// Commit boundaries
//   - UpsertPlayer commits the player row first and the stat rows second. A
//     failure while writing stats leaves the player row in place. Setting
//     Options.AtomicUpsert folds both steps into a single transaction.
//
// Testing notes
//   - Prefer a file DSN under t.TempDir() for tests that exercise the
//     per-operation open/close path, and ":memory:" for quick round trips.
package db
