// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/cricketstats/internal/db"
	"github.com/toeirei/cricketstats/internal/i18n"
	"github.com/toeirei/cricketstats/internal/ingest"
	"github.com/toeirei/cricketstats/internal/logging"
	"github.com/toeirei/cricketstats/internal/render"
)

// withStore opens the configured store for the duration of fn.
func withStore(fn func(st db.Store) error) error {
	st, err := newStore(appConfig)
	if err != nil {
		return errors.New(i18n.T("config.error_init_db", err))
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Warnf("closing store: %v", err)
		}
	}()
	return fn(st)
}

func runInit(cmd *cobra.Command, args []string) error {
	return withStore(func(st db.Store) error {
		if err := st.Initialize(cmd.Context()); err != nil {
			return errors.New(i18n.T("init.error", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("init.success"))
		return nil
	})
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database tables",
		Long:  `Creates the players, batting_stats and bowling_stats tables if they do not exist yet. Running it again is harmless.`,
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>...",
		Short: "Store player records from JSON or YAML files",
		Long: `Reads player records and stores them. Each file holds one record or a
list of records as JSON or YAML; files ending in .zst are decompressed
first and '-' reads standard input.

A player whose name is already stored keeps its profile, but the stats in
the record are appended.

Example record:
  {"name": "A Kumar", "country": "India", "image": "x.jpg", "role": "Bowler",
   "batting_stats": {"ODI": {"matches": "10", "runs": "250", "highest_score": "45*",
     "average": "25.0", "strike_rate": "88.5", "hundreds": "0", "fifties": "2"}},
   "bowling_stats": {}}`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(i18n.T("add.no_input"))
			}
			return withStore(func(st db.Store) error {
				if err := st.Initialize(cmd.Context()); err != nil {
					return errors.New(i18n.T("init.error", err))
				}
				stored := 0
				for _, path := range args {
					recs, err := ingest.ReadFile(path)
					if err != nil {
						return errors.New(i18n.T("add.error", path, err))
					}
					for _, rec := range recs {
						if err := st.UpsertPlayer(cmd.Context(), rec); err != nil {
							return fmt.Errorf("could not store %q from %s: %w", rec.Name, path, err)
						}
						stored++
						logging.Debugf("stored %s from %s", rec.Name, path)
						fmt.Fprintln(cmd.OutOrStdout(), i18n.T("add.success", rec.Name))
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("add.summary", stored))
				return nil
			})
		},
	}
}

func newGetCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Show a player and their statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(st db.Store) error {
				stats, err := st.GetPlayer(cmd.Context(), args[0])
				if errors.Is(err, db.ErrNotFound) {
					return fmt.Errorf("%s: %w", i18n.T("get.not_found", args[0]), err)
				}
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if asJSON {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return enc.Encode(stats)
				}
				return render.PlayerStats(out, stats, render.IsTerminal(out))
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the record as JSON")
	return cmd
}

func newMaintenanceCmd() *cobra.Command {
	var skipIntegrity bool
	var timeoutSec int
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Run database maintenance (VACUUM/OPTIMIZE) for the configured DB",
		Long:  `Runs engine-specific maintenance tasks (VACUUM, OPTIMIZE TABLE, PRAGMA optimize).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeoutSec > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSec)*time.Second)
				defer cancel()
			}
			err := db.RunDBMaintenance(ctx, appConfig.Database.Type, appConfig.Database.Dsn, db.MaintenanceOptions{SkipIntegrity: skipIntegrity})
			if err != nil {
				return errors.New(i18n.T("maintenance.error", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("maintenance.success"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipIntegrity, "skip-integrity", false, "Skip integrity_check (SQLite) during maintenance")
	cmd.Flags().IntVar(&timeoutSec, "timeout", 0, "Timeout in seconds for maintenance (0 means no timeout)")
	return cmd
}
