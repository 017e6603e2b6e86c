package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fitevolve/fitevolve/internal/catalog"
	"github.com/fitevolve/fitevolve/internal/e2etest"
	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/logging"
	"github.com/fitevolve/fitevolve/internal/testhelpers"
)

// checkReadOnly exercises the pages and read-only endpoints without touching the user's records.
func checkReadOnly(ctx context.Context, client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	doc, err := client.GetDoc(ctx, "/")
	if err != nil {
		return fmt.Errorf("get home: %w", err)
	}
	if doc.Find(".day").Length() != 7 { //nolint:mnd // days of the week.
		return errors.New("home page does not show the week")
	}

	if _, err = client.GetDoc(ctx, "/exercises/barbell_back_squat"); err != nil {
		return fmt.Errorf("get exercise info: %w", err)
	}

	var foods []catalog.Food
	status, err := client.GetJSON(ctx, "/api/foods?q=banana", &foods)
	if err != nil || status != http.StatusOK || len(foods) == 0 {
		return fmt.Errorf("search foods: status %d: %w", status, err)
	}

	var strength struct {
		OneRepMax float64 `json:"oneRepMax"`
	}
	status, err = client.GetJSON(ctx, "/api/calculators/strength?weight=100&reps=10", &strength)
	if err != nil || status != http.StatusOK || strength.OneRepMax != 133 { //nolint:mnd // Epley estimate.
		return fmt.Errorf("strength calculator: status %d, 1RM %g: %w", status, strength.OneRepMax, err)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", errors.SlogError(err))
		os.Exit(1)
	}
	if err = checkReadOnly(ctx, client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "smoke test failed", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
}
