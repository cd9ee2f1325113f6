// Package service provides the validated entry point to the product catalogue.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	perrors "github.com/abgdnv/catalogue/internal/catalogue/errors"
	"github.com/abgdnv/catalogue/internal/catalogue/metrics"
	"github.com/abgdnv/catalogue/internal/catalogue/store"
	"github.com/go-playground/validator/v10"
)

const (
	opFind          = "find"
	opAdd           = "add"
	opRemove        = "remove"
	opCheckReorders = "check_reorders"
	opBatchAdd      = "batch_add"
)

// CatalogueService defines the methods for managing catalogue products.
// External records are validated here before they reach the catalogue.
type CatalogueService interface {
	// Title returns the catalogue title.
	Title() string

	// FindByID retrieves a single product by its identifier.
	// Returns false if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*ProductDto, bool)

	// Add inserts a product at the end of the catalogue.
	// Returns false if the ID is already taken, and ErrInvalidProduct if the record fails validation.
	Add(ctx context.Context, product ProductDto) (bool, error)

	// RemoveByID removes a product by its identifier and returns it.
	// Returns false if no product exists with the given ID.
	RemoveByID(ctx context.Context, id string) (*ProductDto, bool)

	// CheckReorders lists the products at or below their reorder level.
	CheckReorders(ctx context.Context) ReorderDto

	// BatchAdd inserts the in-stock products of a batch and returns how many passed the stock filter.
	// Returns ErrBadBatch if any ID is already in the catalogue, and ErrInvalidProduct if a record fails validation.
	BatchAdd(ctx context.Context, batch BatchDto) (int, error)

	// List returns all products in insertion order.
	List(ctx context.Context) []ProductDto
}

// ProductDto represents the data transfer object for a product.
// Stock may be zero or negative; BatchAdd drops such entries.
type ProductDto struct {
	ID              string `json:"id"              validate:"required,max=64"`
	Name            string `json:"name,omitempty"  validate:"max=100"`
	QuantityInStock int    `json:"quantityInStock"`
	ReorderLevel    int    `json:"reorderLevel"`
}

// BatchDto represents a group of products submitted together.
type BatchDto struct {
	Products []ProductDto `json:"products" validate:"dive"`
}

// ReorderDto lists the IDs of products that need to be reordered.
type ReorderDto struct {
	Type       string   `json:"type"`
	ProductIDs []string `json:"productIds"`
}

var _ CatalogueService = (*Service)(nil)

// Service implements CatalogueService on top of a string-keyed catalogue.
type Service struct {
	catalogue *store.Catalogue[string]
	validate  *validator.Validate
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewService creates a new instance of CatalogueService. m may be nil.
func NewService(catalogue *store.Catalogue[string], m *metrics.Metrics, logger *slog.Logger) *Service {
	s := &Service{
		catalogue: catalogue,
		validate:  validator.New(),
		metrics:   m,
		logger:    logger.With("component", "service"),
	}
	s.metrics.SetProducts(catalogue.Len())
	return s
}

func (s *Service) Title() string {
	return s.catalogue.Title()
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id string) (*ProductDto, bool) {
	product, found := s.catalogue.FindProductByID(id)
	if !found {
		s.logger.DebugContext(ctx, "Product not found", "ID", id)
		s.metrics.ObserveOperation(opFind, metrics.OutcomeNotFound)
		return nil, false
	}
	s.metrics.ObserveOperation(opFind, metrics.OutcomeOK)
	return toDto(product), true
}

// Add validates the product and appends it to the catalogue.
func (s *Service) Add(ctx context.Context, product ProductDto) (bool, error) {
	if err := s.validateStruct(product); err != nil {
		s.logger.WarnContext(ctx, "Invalid product", "ID", product.ID, "error", err)
		s.metrics.ObserveOperation(opAdd, metrics.OutcomeInvalid)
		return false, err
	}

	if !s.catalogue.AddProduct(fromDto(product)) {
		s.logger.InfoContext(ctx, "Product already in catalogue", "ID", product.ID)
		s.metrics.ObserveOperation(opAdd, metrics.OutcomeRejected)
		return false, nil
	}
	s.logger.DebugContext(ctx, "Product added", "ID", product.ID, "Name", product.Name)
	s.metrics.ObserveOperation(opAdd, metrics.OutcomeOK)
	s.metrics.SetProducts(s.catalogue.Len())
	return true, nil
}

// RemoveByID removes a product by its ID and returns the removed product.
func (s *Service) RemoveByID(ctx context.Context, id string) (*ProductDto, bool) {
	removed, found := s.catalogue.RemoveProductByID(id)
	if !found {
		s.logger.InfoContext(ctx, "Product not found for removal", "ID", id)
		s.metrics.ObserveOperation(opRemove, metrics.OutcomeNotFound)
		return nil, false
	}
	s.logger.InfoContext(ctx, "Product removed", "ID", id)
	s.metrics.ObserveOperation(opRemove, metrics.OutcomeOK)
	s.metrics.SetProducts(s.catalogue.Len())
	return toDto(removed), true
}

// CheckReorders returns the reorder report of the catalogue.
func (s *Service) CheckReorders(ctx context.Context) ReorderDto {
	report := s.catalogue.CheckReorders()
	s.logger.DebugContext(ctx, "Reorder check complete", "count", len(report.ProductIDs))
	s.metrics.ObserveOperation(opCheckReorders, metrics.OutcomeOK)
	s.metrics.SetReorderPending(len(report.ProductIDs))
	return ReorderDto{
		Type:       report.Type,
		ProductIDs: report.ProductIDs,
	}
}

// BatchAdd validates every record, then hands the batch to the catalogue.
func (s *Service) BatchAdd(ctx context.Context, batch BatchDto) (int, error) {
	if err := s.validateStruct(batch); err != nil {
		s.logger.WarnContext(ctx, "Invalid batch", "size", len(batch.Products), "error", err)
		s.metrics.ObserveOperation(opBatchAdd, metrics.OutcomeInvalid)
		return 0, err
	}

	products := make([]store.Product[string], len(batch.Products))
	for i, p := range batch.Products {
		products[i] = fromDto(p)
	}

	before := s.catalogue.Len()
	count, err := s.catalogue.BatchAddProducts(store.Batch[string]{Products: products})
	if err != nil {
		s.logger.WarnContext(ctx, "Batch rejected", "size", len(products), "error", err)
		s.metrics.ObserveOperation(opBatchAdd, metrics.OutcomeRejected)
		return 0, fmt.Errorf("failed to add batch: %w", err)
	}

	added := s.catalogue.Len() - before
	if added != count {
		s.logger.WarnContext(ctx, "Batch repeats product IDs, reported count exceeds added products",
			"count", count, "added", added)
	}
	s.logger.InfoContext(ctx, "Batch added", "size", len(products), "count", count)
	s.metrics.ObserveOperation(opBatchAdd, metrics.OutcomeOK)
	s.metrics.ObserveBatch(added, len(products)-count)
	s.metrics.SetProducts(s.catalogue.Len())
	return count, nil
}

// List returns every product as a ProductDto.
func (s *Service) List(_ context.Context) []ProductDto {
	products := s.catalogue.Products()
	productDTOs := make([]ProductDto, len(products))
	for i, p := range products {
		productDTOs[i] = *toDto(p)
	}
	return productDTOs
}

// validateStruct runs the validator and folds field errors into one ErrInvalidProduct.
func (s *Service) validateStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", perrors.ErrInvalidProduct, err)
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fieldErr.Namespace()+": failed on rule: "+fieldErr.Tag())
	}
	return fmt.Errorf("%w: %s", perrors.ErrInvalidProduct, strings.Join(fields, "; "))
}

// toDto converts a store.Product to a ProductDto.
func toDto(product store.Product[string]) *ProductDto {
	return &ProductDto{
		ID:              product.ID,
		Name:            product.Name,
		QuantityInStock: product.QuantityInStock,
		ReorderLevel:    product.ReorderLevel,
	}
}

func fromDto(dto ProductDto) store.Product[string] {
	return store.Product[string]{
		ID:              dto.ID,
		Name:            dto.Name,
		QuantityInStock: dto.QuantityInStock,
		ReorderLevel:    dto.ReorderLevel,
	}
}
