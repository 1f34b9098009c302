package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"induparts-system/internal/apperr"
	"induparts-system/internal/auth"
	"induparts-system/internal/cache"
	"induparts-system/internal/database/models"
	"induparts-system/internal/inventory"
	"induparts-system/internal/inventory/dto"
)

const (
	inventoryListCacheKey = "inventory:records"
	cacheTTLShort         = 5 * time.Minute
)

type service struct {
	repo  inventory.Repository
	cache cache.Cache
}

func NewService(repo inventory.Repository, c cache.Cache) inventory.Service {
	return &service{repo: repo, cache: c}
}

func parseNonNegative(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apperr.Validation("%s must be a non-negative integer", field)
	}
	if n < 0 {
		return 0, apperr.Validation("%s must not be negative", field)
	}
	return n, nil
}

func (s *service) Provision(ctx context.Context, actor auth.Actor, in dto.ProvisionInput) (*models.InventoryRecord, error) {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado); err != nil {
		return nil, err
	}

	stock, err := parseNonNegative("stock", in.Stock)
	if err != nil {
		return nil, err
	}
	stockMin, err := parseNonNegative("stock_min", in.StockMin)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.CatalogExists(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("catalog item %d not found", in.ItemID)
	}

	current, err := s.repo.Get(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return nil, apperr.Conflict(nil, "item %d already has an inventory record", in.ItemID)
	}

	rec := &models.InventoryRecord{ItemID: in.ItemID, Stock: stock, StockMin: stockMin}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.cache.Del(ctx, inventoryListCacheKey)
	return rec, nil
}

func (s *service) SetStock(ctx context.Context, actor auth.Actor, in dto.SetStockInput) (*models.InventoryRecord, error) {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado); err != nil {
		return nil, err
	}

	stock, err := parseNonNegative("stock", in.NewStock)
	if err != nil {
		return nil, err
	}

	rec, err := s.repo.Get(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.NotFound("no inventory record for item %d", in.ItemID)
	}

	rec.Stock = stock
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	s.cache.Del(ctx, inventoryListCacheKey)
	return rec, nil
}

func (s *service) SetStockMin(ctx context.Context, actor auth.Actor, in dto.SetStockMinInput) (*models.InventoryRecord, error) {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado); err != nil {
		return nil, err
	}

	stockMin, err := parseNonNegative("stock_min", in.StockMin)
	if err != nil {
		return nil, err
	}

	rec, err := s.repo.Get(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.NotFound("no inventory record for item %d", in.ItemID)
	}

	rec.StockMin = stockMin
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	s.cache.Del(ctx, inventoryListCacheKey)
	return rec, nil
}

func (s *service) List(ctx context.Context, actor auth.Actor) ([]dto.InventoryRow, error) {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado, auth.RoleConsultor); err != nil {
		return nil, err
	}

	if raw, ok := s.cache.Get(ctx, inventoryListCacheKey); ok {
		var rows []dto.InventoryRow
		if err := json.Unmarshal([]byte(raw), &rows); err == nil {
			return rows, nil
		}
	}

	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.InventoryRow, 0, len(recs))
	for _, rec := range recs {
		row := dto.InventoryRow{
			ItemID:   rec.ItemID,
			Stock:    rec.Stock,
			StockMin: rec.StockMin,
			LowStock: rec.Stock < rec.StockMin,
		}
		if rec.Item != nil {
			row.SKU = rec.Item.SKU
			row.PartType = rec.Item.PartType
			row.Description = rec.Item.Description
			row.UnitOfMeasure = rec.Item.UnitOfMeasure
			row.UnitPrice = rec.Item.UnitPrice
		}
		rows = append(rows, row)
	}

	if raw, err := json.Marshal(rows); err == nil {
		s.cache.Set(ctx, inventoryListCacheKey, string(raw), cacheTTLShort)
	}
	return rows, nil
}
