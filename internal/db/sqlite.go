// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// isMemoryDSN reports whether dsn names an in-memory SQLite database.
func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// sqliteFilePath extracts the file path from a SQLite DSN. It returns ""
// for in-memory databases.
func sqliteFilePath(dsn string) string {
	if isMemoryDSN(dsn) {
		return ""
	}
	p := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	return p
}

// ensureSQLiteDir creates the parent directory of a file-backed SQLite
// database so the first open does not fail on a fresh checkout.
func ensureSQLiteDir(dsn string) error {
	p := sqliteFilePath(dsn)
	if p == "" {
		return nil
	}
	dir := filepath.Dir(p)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create database directory %s: %w", dir, err)
	}
	return nil
}
