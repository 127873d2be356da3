// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, configuration loading and the shared
// flags. Subcommands live in commands.go.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/cricketstats/internal/config"
	"github.com/toeirei/cricketstats/internal/db"
	"github.com/toeirei/cricketstats/internal/i18n"
	"github.com/toeirei/cricketstats/internal/logging"
)

var cfgFile string
var verbose bool

var appConfig config.Config

// writeDefaultConfig controls whether a default config file is written when
// none was found. Tests turn it off.
var writeDefaultConfig = true

// newStore opens the configured store. Tests may replace it.
var newStore = func(c config.Config) (db.Store, error) {
	return db.New(c.Database.Type, c.Database.Dsn, db.Options{AtomicUpsert: c.Database.AtomicUpsert})
}

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	if verbose {
		logging.SetDebug(true)
		db.SetDebug(true)
	}

	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, configPath)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		// First run, or the config file was deleted: persist the defaults so
		// the next run has a file to inspect. The app still runs without it.
		if writeDefaultConfig {
			if path, writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
				logging.Warnf("could not write default config file: %v", writeErr)
			} else {
				logging.Debugf("%s", i18n.T("config.wrote_default", path))
			}
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Empty values in a user's file fall back to the defaults.
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
	}
	if appConfig.Database.Dsn == "" {
		appConfig.Database.Dsn = defaults["database.dsn"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}

	i18n.Init(appConfig.Language)
	logging.Debugf("using %s database at %s", appConfig.Database.Type, appConfig.Database.Dsn)
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func applyDefaultFlags(cmd *cobra.Command) {
	// NewRootCmd may be called multiple times in tests; pflag panics on
	// duplicate flag definitions, so check first.
	flags := cmd.PersistentFlags()
	if flags.Lookup("database.type") == nil {
		flags.String("database.type", "sqlite", `Database type ("sqlite", "postgres", "mysql")`)
	}
	if flags.Lookup("database.dsn") == nil {
		flags.String("database.dsn", "./players.db", "Database connection string (DSN)")
	}
	if flags.Lookup("database.atomic_upsert") == nil {
		flags.Bool("database.atomic_upsert", false, "Write a player and its stats in one transaction")
	}
	if flags.Lookup("language") == nil {
		flags.String("language", "en", `Message language ("en", "de")`)
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cricketstats",
		Short: "cricketstats stores cricket player profiles and per-format statistics.",
		Long: `cricketstats keeps cricket player profiles together with their batting and
bowling figures per match format (Test, ODI, T20, ...) in a relational
database. SQLite is used by default.

Running without a subcommand creates the database tables.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupDefaultServices,
		RunE:              runInit,
	}

	cmd.Version = compositeVersion(resolveBuildVersion(nil))

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	applyDefaultFlags(cmd)

	cmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newGetCmd(),
		newMaintenanceCmd(),
		newVersionCmd(),
	)
	return cmd
}
