// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/uptrace/bun"
)

// BunStore is the bun-backed Store. It remembers how to reach the database
// and opens a scoped handle per operation.
type BunStore struct {
	dbType string
	dsn    string
	opts   Options

	mu   sync.Mutex
	keep *bun.DB // only set for in-memory SQLite
}

var _ Store = (*BunStore)(nil)

// New validates dbType and returns a Store for dsn. No connection is opened
// until the first operation.
func New(dbType, dsn string, opts Options) (*BunStore, error) {
	if _, err := driverName(dbType); err != nil {
		return nil, err
	}
	if dsn == "" {
		return nil, errors.New("empty database DSN")
	}
	return &BunStore{dbType: dbType, dsn: dsn, opts: opts}, nil
}

// DBType returns the configured database type.
func (s *BunStore) DBType() string { return s.dbType }

// open acquires a handle for one operation. The returned release func must
// be called on every exit path.
func (s *BunStore) open() (*bun.DB, func(), error) {
	if s.dbType == "sqlite" && isMemoryDSN(s.dsn) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.keep == nil {
			bdb, err := s.dial()
			if err != nil {
				return nil, nil, err
			}
			s.keep = bdb
		}
		return s.keep, func() {}, nil
	}

	bdb, err := s.dial()
	if err != nil {
		return nil, nil, err
	}
	return bdb, func() {
		if err := bdb.Close(); err != nil {
			dbLogf("db: close failed: %v", err)
		}
	}, nil
}

func (s *BunStore) dial() (*bun.DB, error) {
	driver, err := driverName(s.dbType)
	if err != nil {
		return nil, err
	}
	if s.dbType == "sqlite" {
		if err := ensureSQLiteDir(s.dsn); err != nil {
			return nil, err
		}
	}
	start := time.Now()
	sqlDB, err := sqlOpenFunc(driver, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection per handle: every statement of an operation, and the
	// transactions it opens, run on the same connection.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	dbLogf("db: opened %s driver in %s", driver, time.Since(start))
	return createBunDB(sqlDB, s.dbType), nil
}

// withDB runs fn with a scoped handle.
func (s *BunStore) withDB(fn func(bdb *bun.DB) error) error {
	bdb, release, err := s.open()
	if err != nil {
		return err
	}
	defer release()
	return fn(bdb)
}

// Close releases the kept in-memory handle, if any.
func (s *BunStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keep == nil {
		return nil
	}
	err := s.keep.Close()
	s.keep = nil
	return err
}

// Initialize ensures the schema exists by applying pending migrations.
func (s *BunStore) Initialize(ctx context.Context) error {
	return s.withDB(func(bdb *bun.DB) error {
		if err := RunMigrations(ctx, bdb.DB, s.dbType); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		return nil
	})
}
