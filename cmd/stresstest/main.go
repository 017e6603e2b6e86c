package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fitevolve/fitevolve/internal/e2etest"
	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/logging"
	"github.com/fitevolve/fitevolve/internal/nutrition"
	"github.com/fitevolve/fitevolve/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const (
	scenarioTimeout         = 30 * time.Second
	maxConcurrentOperations = 20
	numScenarios            = 200
	waterAmount             = 250
	successRateThreshold    = 95.0
	expectedArgsCount       = 2
	percentageMultiplier    = 100
)

// scenario logs a glass of water, reads it back through the daily summary and the dashboard and removes it again
// so that the stress test leaves the user's records untouched.
func scenario(ctx context.Context, client *e2etest.Client) error {
	var entry nutrition.WaterEntry
	status, err := client.PostJSON(ctx, "/api/water", map[string]int{"amount": waterAmount}, &entry)
	if err != nil || status != http.StatusCreated {
		return fmt.Errorf("log water: status %d: %w", status, err)
	}
	defer func() {
		// The cleanup must run even when the scenario context has expired.
		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), scenarioTimeout)
		defer cancel()
		_, _ = client.PostJSON(cleanupCtx, "/api/water/"+entry.ID+"/delete", nil, nil)
	}()

	var summary nutrition.DailySummary
	if status, err = client.GetJSON(ctx, "/api/nutrition/days/today", &summary); err != nil ||
		status != http.StatusOK {
		return fmt.Errorf("daily summary: status %d: %w", status, err)
	}
	if summary.TotalWater < waterAmount {
		return fmt.Errorf("daily summary misses logged water: %d ml", summary.TotalWater)
	}

	resp, err := client.Get(ctx, "/")
	if err != nil {
		return fmt.Errorf("get home: %w", err)
	}
	defer resp.Body.Close()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fmt.Errorf("parse home: %w", err)
	}
	if doc.Find(".total-sessions").Length() == 0 {
		return errors.New("home page misses the training stats")
	}

	if status, err = client.GetJSON(ctx, "/api/calculators/rest?reps=5&mode=strength", nil); err != nil ||
		status != http.StatusOK {
		return fmt.Errorf("rest calculator: status %d: %w", status, err)
	}
	return nil
}

// runLoadTest runs the scenarios concurrently and fails when too many of them fail.
func runLoadTest(ctx context.Context, client *e2etest.Client, logger *slog.Logger) error {
	logger.LogAttrs(ctx, slog.LevelInfo, "Starting load test", slog.Int("scenarios", numScenarios))

	var successCount, failureCount atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOperations)

	for i := range numScenarios {
		g.Go(func() error {
			scenarioCtx, cancel := context.WithTimeout(ctx, scenarioTimeout)
			defer cancel()

			if err := scenario(scenarioCtx, client); err != nil {
				failureCount.Add(1)
				// Individual failures are reported but don't stop the other scenarios.
				logger.LogAttrs(scenarioCtx, slog.LevelWarn, "Scenario failed",
					slog.Int("scenario", i), errors.SlogError(err))
				return nil
			}
			successCount.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load test failed: %w", err)
	}

	successRate := float64(successCount.Load()) / numScenarios * percentageMultiplier
	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed",
		slog.Int64("successful", successCount.Load()),
		slog.Int64("failed", failureCount.Load()),
		slog.Float64("success_rate", successRate))

	if successRate < successRateThreshold {
		return fmt.Errorf("load test failed: success rate %.1f%% below threshold", successRate)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))

	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}
	client, err := e2etest.NewClient(url)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", errors.SlogError(err))
		os.Exit(1)
	}

	if err = runLoadTest(ctx, client, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "load test failed", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed successfully 🙌",
		slog.Duration("total_duration", time.Since(start)))
}
