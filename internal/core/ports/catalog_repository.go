package ports

import (
	"context"

	"dispatch/internal/core/domain/model/catalog"
)

// CatalogRepository reads the product catalog used to measure orders.
// The catalog is owned by another system; this service never writes it.
type CatalogRepository interface {
	// Load returns every product with its package sizes.
	Load(ctx context.Context) (catalog.Catalog, error)
}
