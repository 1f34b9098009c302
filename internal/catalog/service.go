package catalog

import (
	"context"

	"induparts-system/internal/auth"
	"induparts-system/internal/catalog/dto"
	"induparts-system/internal/database/models"
)

type Service interface {
	// Upsert updates the row identified by OriginalSKU when it is set,
	// otherwise inserts a new item. It never touches the inventory
	// ledger; callers provision stock separately.
	Upsert(ctx context.Context, actor auth.Actor, in dto.UpsertItemInput) (*models.CatalogItem, error)

	// Delete accepts a SKU or a numeric item id. Deletion is rejected
	// while an inventory record references the item.
	Delete(ctx context.Context, actor auth.Actor, ref string) error

	List(ctx context.Context, actor auth.Actor) ([]models.CatalogItem, error)
}
