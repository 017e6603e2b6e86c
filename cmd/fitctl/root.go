package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fitevolve/fitevolve/internal/envstruct"
	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/logging"
	"github.com/fitevolve/fitevolve/internal/nutrition"
	"github.com/fitevolve/fitevolve/internal/profile"
	"github.com/fitevolve/fitevolve/internal/sqlite"
	"github.com/fitevolve/fitevolve/internal/workout"
	"github.com/spf13/cobra"
)

type config struct {
	// SqliteURL is shared with the web server so both operate on the same data.
	SqliteURL string `env:"FITEVOLVE_SQLITE_URL" envDefault:"./fitevolve.sqlite3"`
	UserID    string `env:"FITEVOLVE_USER_ID" envDefault:"local"`
	LogLevel  string `env:"FITEVOLVE_LOG_LEVEL" envDefault:"warn"`
}

// cli holds the services opened for the running command.
type cli struct {
	lookupEnv func(string) (string, bool)
	cfg       config
	now       func() time.Time
	// cancel stops the background work of the database.
	cancel    context.CancelFunc
	db        *sqlite.Database
	profile   *profile.Service
	nutrition *nutrition.Service
	workout   *workout.Service
}

// open reads the configuration, applies the flag overrides and opens the database.
func (c *cli) open(cmd *cobra.Command, dbPath, userID string) error {
	if err := envstruct.Populate(&c.cfg, c.lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}
	if dbPath != "" {
		c.cfg.SqliteURL = dbPath
	}
	if userID != "" {
		c.cfg.UserID = userID
	}
	level, err := logging.ParseLevel(c.cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), level)

	ctx, cancel := context.WithCancel(cmd.Context())
	c.cancel = cancel
	db, err := sqlite.NewDatabase(ctx, c.cfg.SqliteURL, logger)
	if err != nil {
		cancel()
		return errors.Wrap(err, "open db", slog.String("url", c.cfg.SqliteURL))
	}
	c.db = db
	c.profile = profile.NewService(db, logger).WithClock(c.now)
	c.nutrition = nutrition.NewService(db, logger).WithClock(c.now)
	c.workout = workout.NewService(db, logger).WithClock(c.now)
	return nil
}

func (c *cli) close() error {
	if c.cancel != nil {
		c.cancel()
	}
	if c.db == nil {
		return nil
	}
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}

func newRootCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	var (
		dbPath string
		userID string
		c      = &cli{lookupEnv: lookupEnv, now: time.Now} //nolint:exhaustruct // services are opened per command.
	)
	root := &cobra.Command{
		Use:           "fitctl",
		Short:         "fitctl tracks your training and nutrition from the terminal",
		Long:          "fitctl manages the FitEvolve profile, meals, water and workouts stored in the local database.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.open(cmd, dbPath, userID)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.close()
		},
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (default $FITEVOLVE_SQLITE_URL)")
	root.PersistentFlags().StringVar(&userID, "user", "", "User id (default $FITEVOLVE_USER_ID)")

	root.AddCommand(
		newOnboardCmd(c),
		newProfileCmd(c),
		newMealCmd(c),
		newWaterCmd(c),
		newTodayCmd(c),
		newWeekCmd(c),
		newFoodsCmd(c),
		newWorkoutCmd(c),
		newExportCmd(c),
	)
	return root
}

// parseDateOrNow parses a YYYY-MM-DD flag value in the local time zone. Empty means now.
func parseDateOrNow(date string, now time.Time) (time.Time, error) {
	if date == "" {
		return now, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

func newExportCmd(c *cli) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the user's records into a standalone SQLite file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				var err error
				if dir, err = os.Getwd(); err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
			}
			path, err := c.db.ExportUser(cmd.Context(), c.cfg.UserID, dir)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory for the export (default current directory)")
	return cmd
}
