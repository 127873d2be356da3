// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for cricketstats.
//
// Usage:
//
//	go run . [flags]
//	./cricketstats add players.json
//	./cricketstats get "A Kumar"
//
// See --help for options.
package main

import (
	"os"

	"github.com/toeirei/cricketstats/internal/logging"
	"github.com/toeirei/cricketstats/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
