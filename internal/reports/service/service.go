package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"induparts-system/internal/auth"
	"induparts-system/internal/catalog"
	"induparts-system/internal/customerorders"
	"induparts-system/internal/inventory"
	"induparts-system/internal/reports"
	"induparts-system/internal/reports/dto"
	"induparts-system/internal/supplierorders"
)

const timestampLayout = "2006-01-02 15:04:05"

type service struct {
	catalog   catalog.Repository
	inventory inventory.Repository
	customers customerorders.Repository
	suppliers supplierorders.Repository
}

func NewService(c catalog.Repository, i inventory.Repository, co customerorders.Repository, so supplierorders.Repository) reports.Service {
	return &service{catalog: c, inventory: i, customers: co, suppliers: so}
}

func (s *service) gate(actor auth.Actor) error {
	return auth.Require(actor, auth.RoleAdmin, auth.RoleConsultor)
}

func (s *service) Catalog(ctx context.Context, actor auth.Actor) ([]dto.CatalogReportRow, error) {
	if err := s.gate(actor); err != nil {
		return nil, err
	}

	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.CatalogReportRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, dto.CatalogReportRow{
			SKU:           it.SKU,
			PartType:      it.PartType,
			Description:   it.Description,
			UnitOfMeasure: it.UnitOfMeasure,
			UnitCount:     it.UnitCount,
			UnitPrice:     formatPrice(it.UnitPrice),
		})
	}
	return rows, nil
}

func (s *service) Inventory(ctx context.Context, actor auth.Actor) ([]dto.InventoryReportRow, error) {
	if err := s.gate(actor); err != nil {
		return nil, err
	}

	recs, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.InventoryReportRow, 0, len(recs))
	for _, rec := range recs {
		row := dto.InventoryReportRow{
			Stock:    rec.Stock,
			StockMin: rec.StockMin,
			LowStock: rec.Stock < rec.StockMin,
		}
		if rec.Item != nil {
			row.SKU = rec.Item.SKU
			row.PartType = rec.Item.PartType
			row.UnitPrice = formatPrice(rec.Item.UnitPrice)
			if price, err := decimal.NewFromString(rec.Item.UnitPrice); err == nil {
				row.StockValue = price.Mul(decimal.NewFromInt(int64(rec.Stock))).StringFixed(2)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *service) CustomerOrders(ctx context.Context, actor auth.Actor) ([]dto.CustomerOrderReportRow, error) {
	if err := s.gate(actor); err != nil {
		return nil, err
	}

	orders, err := s.customers.List(ctx, "")
	if err != nil {
		return nil, err
	}

	rows := make([]dto.CustomerOrderReportRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, dto.CustomerOrderReportRow{
			OrderID:         o.OrderID,
			ClientName:      o.ClientName,
			OrderCode:       o.OrderCode,
			Description:     o.Description,
			Size:            o.Size,
			Quantity:        o.Quantity,
			Status:          o.Status,
			StatusChangedAt: formatTimestamp(o.StatusChangedAt),
		})
	}
	return rows, nil
}

func (s *service) SupplierOrders(ctx context.Context, actor auth.Actor) ([]dto.SupplierOrderReportRow, error) {
	if err := s.gate(actor); err != nil {
		return nil, err
	}

	orders, err := s.suppliers.List(ctx, "")
	if err != nil {
		return nil, err
	}

	rows := make([]dto.SupplierOrderReportRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, dto.SupplierOrderReportRow{
			OrderID:         o.OrderID,
			SupplierName:    o.SupplierName,
			OrderCode:       o.OrderCode,
			Description:     o.Description,
			Size:            o.Size,
			Quantity:        o.Quantity,
			Status:          o.Status,
			StatusChangedAt: formatTimestamp(o.StatusChangedAt),
		})
	}
	return rows, nil
}

// formatPrice re-renders a stored decimal string with two decimals.
// Malformed values pass through untouched rather than breaking a report.
func formatPrice(stored string) string {
	price, err := decimal.NewFromString(stored)
	if err != nil {
		return stored
	}
	return price.StringFixed(2)
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timestampLayout)
}
