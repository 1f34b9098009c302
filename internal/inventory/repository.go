package inventory

import (
	"context"

	"induparts-system/internal/database/models"
)

// Repository persists ledger rows. Get returns (nil, nil) for a missing
// record. List preloads the catalog item for the joined display view.
type Repository interface {
	Get(ctx context.Context, itemID int64) (*models.InventoryRecord, error)
	Create(ctx context.Context, rec *models.InventoryRecord) error
	Save(ctx context.Context, rec *models.InventoryRecord) error
	List(ctx context.Context) ([]models.InventoryRecord, error)
	CatalogExists(ctx context.Context, itemID int64) (bool, error)
}
