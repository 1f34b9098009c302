package customerorders

import (
	"context"
	"time"

	"induparts-system/internal/customerorders/dto"
	"induparts-system/internal/database/models"
)

// Repository is the persistence boundary for customer orders. Lookups
// return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, order *models.CustomerOrder) error
	Get(ctx context.Context, orderID int64) (*models.CustomerOrder, error)
	// List returns orders newest first. An empty status means no filter.
	List(ctx context.Context, status string) ([]models.CustomerOrder, error)
	UpdateStatus(ctx context.Context, orderID int64, status string, changedAt time.Time) error

	CreateLineItem(ctx context.Context, item *models.OrderLineItem) error
	GetLineItem(ctx context.Context, detailID int64) (*models.OrderLineItem, error)
	DeleteLineItem(ctx context.Context, detailID int64) error
	ListLineItems(ctx context.Context, orderID int64) ([]dto.LineItemRow, error)
}

// CatalogLookup is the slice of the catalog repository line item
// validation needs. A deleted part makes the lookup return (nil, nil).
type CatalogLookup interface {
	GetByID(ctx context.Context, id int64) (*models.CatalogItem, error)
}
