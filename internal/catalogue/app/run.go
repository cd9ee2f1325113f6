package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	perrors "github.com/abgdnv/catalogue/internal/catalogue/errors"
	"github.com/abgdnv/catalogue/internal/catalogue/loader"
	"github.com/abgdnv/catalogue/pkg/logger"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/abgdnv/catalogue/internal/catalogue/app"

// Summary counts what a run did with its batch files.
type Summary struct {
	Applied  int `json:"applied"`
	Rejected int `json:"rejected"`
	// Added is the sum of the counts reported by the catalogue for applied batches.
	Added int `json:"added"`
}

// Run seeds the catalogue, applies the batch files in order and writes the
// reorder report as JSON to out. A rejected batch does not stop the run;
// only failures to read input, write output or a cancelled ctx return an error.
func Run(ctx context.Context, deps *Dependencies, batchPaths []string, out io.Writer) (Summary, error) {
	var summary Summary
	log := deps.Logger.With("component", "app")

	if seedFile := deps.Config.Catalogue.SeedFile; seedFile != "" {
		if err := seed(ctx, deps, seedFile); err != nil {
			return summary, err
		}
	}

	batches, err := loader.LoadBatches(ctx, batchPaths, deps.Config.Loader.Concurrency)
	if err != nil {
		return summary, fmt.Errorf("failed to load batches: %w", err)
	}
	log.InfoContext(ctx, "Batches loaded", "count", len(batches))

	tracer := otel.Tracer(tracerName)
	for i, batch := range batches {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		batchID := uuid.NewString()
		batchCtx, span := tracer.Start(logger.WithBatchID(ctx, batchID), "catalogue.batch")
		span.SetAttributes(
			attribute.String("batch.id", batchID),
			attribute.String("batch.file", batchPaths[i]),
			attribute.Int("batch.size", len(batch.Products)),
		)

		count, err := deps.CatalogueService.BatchAdd(batchCtx, batch)
		switch {
		case err == nil:
			summary.Applied++
			summary.Added += count
			span.SetAttributes(attribute.Int("batch.count", count))
			log.InfoContext(batchCtx, "Batch file applied", "file", batchPaths[i], "count", count)
		case errors.Is(err, perrors.ErrBadBatch), errors.Is(err, perrors.ErrInvalidProduct):
			summary.Rejected++
			span.RecordError(err)
			span.SetStatus(codes.Error, "batch rejected")
			log.ErrorContext(batchCtx, "Batch file rejected", "file", batchPaths[i], "error", err)
		default:
			span.End()
			return summary, fmt.Errorf("failed to apply batch %s: %w", batchPaths[i], err)
		}
		span.End()
	}

	report := deps.CatalogueService.CheckReorders(ctx)
	if err := json.NewEncoder(out).Encode(report); err != nil {
		return summary, fmt.Errorf("failed to write reorder report: %w", err)
	}

	if textfile := deps.Config.Metrics.Textfile; textfile != "" {
		if err := deps.Metrics.WriteTextfile(textfile); err != nil {
			return summary, fmt.Errorf("failed to write metrics textfile: %w", err)
		}
		log.DebugContext(ctx, "Metrics written", "file", textfile)
	}

	log.InfoContext(ctx, "Run complete",
		"applied", summary.Applied, "rejected", summary.Rejected, "added", summary.Added,
		"reorder", len(report.ProductIDs))
	return summary, nil
}

// seed adds the products of path one by one. Repeated IDs are skipped;
// a record that fails validation aborts the run.
func seed(ctx context.Context, deps *Dependencies, path string) error {
	batch, err := loader.LoadBatch(path)
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	added := 0
	for _, p := range batch.Products {
		ok, err := deps.CatalogueService.Add(ctx, p)
		if err != nil {
			return fmt.Errorf("invalid seed product: %w", err)
		}
		if !ok {
			deps.Logger.WarnContext(ctx, "Seed product skipped, ID already in catalogue", "ID", p.ID)
			continue
		}
		added++
	}
	deps.Logger.InfoContext(ctx, "Catalogue seeded", "file", path, "added", added, "total", len(deps.CatalogueService.List(ctx)))
	return nil
}
