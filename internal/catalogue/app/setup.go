// Package app wires the catalogue application and runs batch files through it.
package app

import (
	"log/slog"

	"github.com/abgdnv/catalogue/internal/catalogue/metrics"
	"github.com/abgdnv/catalogue/internal/catalogue/service"
	"github.com/abgdnv/catalogue/internal/catalogue/store"
	"github.com/abgdnv/catalogue/internal/config"
)

type Dependencies struct {
	CatalogueService service.CatalogueService
	Metrics          *metrics.Metrics
	Config           *config.Config
	Logger           *slog.Logger
}

// SetupDependencies creates an empty catalogue titled from cfg and the service on top of it.
// m may be nil to disable metrics.
func SetupDependencies(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *Dependencies {
	catalogue := store.New[string](cfg.Catalogue.Title)

	return &Dependencies{
		CatalogueService: service.NewService(catalogue, m, logger),
		Metrics:          m,
		Config:           cfg,
		Logger:           logger,
	}
}
