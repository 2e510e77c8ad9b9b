// Package repository defines the persistence interface for database-backed
// catalog products.
package repository

import (
	"context"

	"github.com/ashford-menswear/catalog-search/internal/catalog"
)

// ProductRepository loads individual product rows for search candidate
// assembly.
type ProductRepository interface {
	// ListActive returns every active product row. Rows arrive in raw form;
	// the catalog normalizer is responsible for degrading missing fields.
	ListActive(ctx context.Context) ([]catalog.ProductRow, error)
}
