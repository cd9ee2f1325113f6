package store

import (
	perrors "github.com/abgdnv/catalogue/internal/catalogue/errors"
)

// Catalogue owns an ordered sequence of products with unique IDs.
type Catalogue[K comparable] struct {
	title    string
	products []Product[K]
}

// New creates an empty catalogue with the given title.
func New[K comparable](title string) *Catalogue[K] {
	return &Catalogue[K]{
		title:    title,
		products: []Product[K]{},
	}
}

// Title returns the title the catalogue was created with.
func (c *Catalogue[K]) Title() string {
	return c.title
}

// Len returns the number of products in the catalogue.
func (c *Catalogue[K]) Len() int {
	return len(c.products)
}

// Products returns a copy of the products in insertion order.
func (c *Catalogue[K]) Products() []Product[K] {
	list := make([]Product[K], len(c.products))
	copy(list, c.products)
	return list
}

// FindProductByID returns the first product with the given ID.
// The boolean is false when no product matches.
func (c *Catalogue[K]) FindProductByID(id K) (Product[K], bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product[K]{}, false
}

// AddProduct appends the product unless its ID is already taken.
// Returns false, leaving the catalogue unchanged, on a duplicate ID.
func (c *Catalogue[K]) AddProduct(product Product[K]) bool {
	if _, found := c.FindProductByID(product.ID); found {
		return false
	}
	c.products = append(c.products, product)
	return true
}

// RemoveProductByID removes every product with the given ID and returns the one found first.
// The boolean is false, and the catalogue unchanged, when no product matches.
func (c *Catalogue[K]) RemoveProductByID(id K) (Product[K], bool) {
	removed, found := c.FindProductByID(id)
	if !found {
		return Product[K]{}, false
	}
	kept := make([]Product[K], 0, len(c.products))
	for _, p := range c.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.products = kept
	return removed, true
}

// CheckReorders returns the IDs of products at or below their reorder level.
func (c *Catalogue[K]) CheckReorders() Reorder[K] {
	result := Reorder[K]{Type: ReorderType, ProductIDs: []K{}}
	for _, p := range c.products {
		if p.NeedsReorder() {
			result.ProductIDs = append(result.ProductIDs, p.ID)
		}
	}
	return result
}

// BatchAddProducts adds the in-stock products of a batch.
//
// The whole batch is rejected with a *BadBatchError when any entry's ID is
// already in the catalogue; nothing is added in that case. Otherwise entries
// with QuantityInStock <= 0 are dropped and the rest are added in batch order.
//
// The returned count is the number of entries that passed the stock filter.
// IDs repeated inside the batch are not pre-checked: the later copy is refused
// by AddProduct but still counted.
func (c *Catalogue[K]) BatchAddProducts(batch Batch[K]) (int, error) {
	var collisions []K
	for _, p := range batch.Products {
		if _, found := c.FindProductByID(p.ID); found {
			collisions = append(collisions, p.ID)
		}
	}
	if len(collisions) > 0 {
		return 0, &perrors.BadBatchError[K]{IDs: collisions}
	}

	inStock := make([]Product[K], 0, len(batch.Products))
	for _, p := range batch.Products {
		if p.QuantityInStock > 0 {
			inStock = append(inStock, p)
		}
	}
	for _, p := range inStock {
		c.AddProduct(p)
	}
	return len(inStock), nil
}
