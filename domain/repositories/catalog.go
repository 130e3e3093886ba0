package repositories

import (
	"context"

	"github.com/verdora/voicecart-server/domain/entities"
)

// ProductCatalog abstracts the external tabular store holding the catalog
type ProductCatalog interface {
	// Search executes a filtered catalog lookup. Results are sorted by title
	// ascending and capped at ten records.
	Search(ctx context.Context, query entities.ProductQuery) ([]entities.Product, error)
}
