package catalog

import (
	"context"

	"induparts-system/internal/database/models"
)

// Repository persists catalog rows. Lookups return (nil, nil) when the
// item does not exist; storage errors are translated to the domain error
// kinds before they leave this layer.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*models.CatalogItem, error)
	GetBySKU(ctx context.Context, sku string) (*models.CatalogItem, error)
	Create(ctx context.Context, item *models.CatalogItem) error
	Update(ctx context.Context, item *models.CatalogItem) error

	// Delete removes the row and, when the line-item table is
	// provisioned, nulls out references to it in one transaction.
	Delete(ctx context.Context, itemID int64) error
	HasInventory(ctx context.Context, itemID int64) (bool, error)
	List(ctx context.Context) ([]models.CatalogItem, error)
}
