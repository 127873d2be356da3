// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "errors"

// ErrNotFound is returned by GetPlayer when no player has the given name.
var ErrNotFound = errors.New("player not found")

// ErrUnsupportedDatabase is returned for database types other than sqlite,
// postgres and mysql.
var ErrUnsupportedDatabase = errors.New("unsupported database type")
