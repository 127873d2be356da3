// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for cricketstats using
// Cobra. It wires configuration, logging and i18n, then delegates to the
// player stats store in internal/db. CLI code should remain thin.
package cli
