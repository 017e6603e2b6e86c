package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fitevolve/fitevolve/internal/envstruct"
	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/flightrecorder"
	"github.com/fitevolve/fitevolve/internal/logging"
	"github.com/fitevolve/fitevolve/internal/nutrition"
	"github.com/fitevolve/fitevolve/internal/profile"
	"github.com/fitevolve/fitevolve/internal/sqlite"
	"github.com/fitevolve/fitevolve/internal/workout"
	"github.com/yuin/goldmark"
)

type application struct {
	logger           *slog.Logger
	templateFS       fs.FS
	markdown         goldmark.Markdown
	userID           string
	now              func() time.Time
	profileService   *profile.Service
	nutritionService *nutrition.Service
	workoutService   *workout.Service
	// flightRecorder is nil unless a traces directory is configured.
	flightRecorder *flightrecorder.Recorder
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"FITEVOLVE_ADDR" envDefault:"localhost:8081"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"FITEVOLVE_SQLITE_URL" envDefault:"./fitevolve.sqlite3"`
	// UserID identifies the local user all requests act on.
	UserID string `env:"FITEVOLVE_USER_ID" envDefault:"local"`
	// TemplatePath is the path to the directory containing the HTML templates.
	TemplatePath string `env:"FITEVOLVE_TEMPLATE_PATH" envDefault:""`
	// DotenvPath is an optional .env file consulted after the process environment.
	DotenvPath string `env:"FITEVOLVE_DOTENV" envDefault:".env"`
	// TracesDir enables the flight recorder. Execution traces of timed out requests are written here.
	TracesDir string `env:"FITEVOLVE_TRACES_DIR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}
	if cfg.DotenvPath != "" {
		if lookupEnv, err = envstruct.WithDotenv(cfg.DotenvPath, lookupEnv); err != nil {
			return errors.Wrap(err, "read dotenv", slog.String("path", cfg.DotenvPath))
		}
		if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
			return errors.Wrap(err, "populate config from dotenv")
		}
	}

	var htmlTemplatePath string
	if htmlTemplatePath, err = templateDir(cfg.TemplatePath); err != nil {
		return errors.Wrap(err, "resolve template path")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "failed to close db", errors.SlogError(closeErr))
		}
	}()
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	app := application{
		logger:           logger,
		templateFS:       os.DirFS(htmlTemplatePath),
		markdown:         newMarkdown(),
		userID:           cfg.UserID,
		now:              time.Now,
		profileService:   profile.NewService(db, logger),
		nutritionService: nutrition.NewService(db, logger),
		workoutService:   workout.NewService(db, logger),
		flightRecorder:   nil,
	}

	if cfg.TracesDir != "" {
		if app.flightRecorder, err = flightrecorder.New(flightrecorder.Config{ //nolint:exhaustruct // defaults.
			Logger: logger,
			Dir:    cfg.TracesDir,
		}); err != nil {
			return errors.Wrap(err, "new flight recorder")
		}
		if err = app.flightRecorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer app.flightRecorder.Stop(ctx)
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	level := slog.LevelDebug
	if s, ok := os.LookupEnv("FITEVOLVE_LOG_LEVEL"); ok {
		parsed, err := logging.ParseLevel(s)
		if err != nil {
			slog.Error("invalid log level", slog.String("level", s))
			os.Exit(1)
		}
		level = parsed
	}
	logger := logging.New(os.Stdout, level)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
