package supplierorders

import (
	"context"
	"time"

	"induparts-system/internal/database/models"
)

// Repository is the persistence boundary for supplier orders. Lookups
// return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, order *models.SupplierOrder) error
	Get(ctx context.Context, orderID int64) (*models.SupplierOrder, error)
	// List returns orders newest first. An empty status means no filter.
	List(ctx context.Context, status string) ([]models.SupplierOrder, error)
	UpdateStatus(ctx context.Context, orderID int64, status string, changedAt time.Time) error
}
