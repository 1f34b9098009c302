package reports

import (
	"context"

	"induparts-system/internal/auth"
	"induparts-system/internal/reports/dto"
)

// Service renders read-only report rows for the consulting surface. It
// never mutates anything and carries no logic beyond joining and
// formatting the underlying lists.
type Service interface {
	Catalog(ctx context.Context, actor auth.Actor) ([]dto.CatalogReportRow, error)
	Inventory(ctx context.Context, actor auth.Actor) ([]dto.InventoryReportRow, error)
	CustomerOrders(ctx context.Context, actor auth.Actor) ([]dto.CustomerOrderReportRow, error)
	SupplierOrders(ctx context.Context, actor auth.Actor) ([]dto.SupplierOrderReportRow, error)
}
