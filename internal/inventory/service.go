package inventory

import (
	"context"

	"induparts-system/internal/auth"
	"induparts-system/internal/database/models"
	"induparts-system/internal/inventory/dto"
)

type Service interface {
	// Provision creates the 1:1 ledger row for a catalog item. Catalog
	// writes never do this implicitly.
	Provision(ctx context.Context, actor auth.Actor, in dto.ProvisionInput) (*models.InventoryRecord, error)

	// SetStock is an absolute set, not a delta. Racing writers resolve
	// last-write-wins; there is no version token and no retry.
	SetStock(ctx context.Context, actor auth.Actor, in dto.SetStockInput) (*models.InventoryRecord, error)

	SetStockMin(ctx context.Context, actor auth.Actor, in dto.SetStockMinInput) (*models.InventoryRecord, error)

	// List returns the joined display view. LowStock is computed per
	// row at read time and is never stored.
	List(ctx context.Context, actor auth.Actor) ([]dto.InventoryRow, error)
}
