// Package store provides the in-memory product catalogue.
// The catalogue is not safe for concurrent use; callers serialize access.
package store

// ReorderType is the fixed type of every reorder report.
const ReorderType = "Reorder"

// Product represents a product entity in the catalogue.
// Only ID, QuantityInStock and ReorderLevel are read by the catalogue.
type Product[K comparable] struct {
	ID              K
	Name            string
	QuantityInStock int
	ReorderLevel    int
}

// NeedsReorder reports whether stock has fallen to or below the reorder level.
func (p Product[K]) NeedsReorder() bool {
	return p.QuantityInStock <= p.ReorderLevel
}

// Batch groups products submitted for insertion together.
type Batch[K comparable] struct {
	Products []Product[K]
}

// Reorder lists the products that need to be reordered, in catalogue order.
type Reorder[K comparable] struct {
	Type       string
	ProductIDs []K
}
