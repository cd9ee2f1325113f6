// Package main runs product batch files through a catalogue and prints the reorder report.
//
// Usage:
//
//	catalogue [batch-file ...]
//
// Configuration is read from config.yaml, .env and CATALOGUE_* environment variables.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/abgdnv/catalogue/internal/catalogue/app"
	"github.com/abgdnv/catalogue/internal/catalogue/metrics"
	"github.com/abgdnv/catalogue/internal/config"
	"github.com/abgdnv/catalogue/pkg/bootstrap"
	"github.com/abgdnv/catalogue/pkg/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

const serviceName = "catalogue"

const (
	exitOK       = 0
	exitFailure  = 1
	exitRejected = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one catalogue run and returns the process exit code:
// exitFailure on a configuration or load error, exitRejected when any batch was rejected.
// The reorder report goes to stdout, logs to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		return exitFailure
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLoggerTo(stderr, cfg.Log.Level)

	tp := telemetry.NewTracerProvider(serviceName, cfg.Tracing)
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown tracer provider", "error", err)
		}
	}()

	deps := app.SetupDependencies(cfg, logger, metrics.New(prometheus.NewRegistry()))
	logger.Info("Catalogue starting", "title", cfg.Catalogue.Title, "batches", len(args))

	summary, err := app.Run(ctx, deps, args, stdout)
	if err != nil {
		logger.Error("Run failed", "error", err)
		return exitFailure
	}
	if summary.Rejected > 0 {
		logger.Warn("Some batches were rejected", "rejected", summary.Rejected)
		return exitRejected
	}
	return exitOK
}
