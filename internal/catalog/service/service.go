package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"induparts-system/internal/apperr"
	"induparts-system/internal/auth"
	"induparts-system/internal/cache"
	"induparts-system/internal/catalog"
	"induparts-system/internal/catalog/dto"
	"induparts-system/internal/database/models"
)

const (
	catalogItemsCacheKey  = "catalog:items"
	inventoryListCacheKey = "inventory:records"
	cacheTTLMedium        = 30 * time.Minute
)

type service struct {
	repo  catalog.Repository
	cache cache.Cache
}

func NewService(repo catalog.Repository, c cache.Cache) catalog.Service {
	return &service{repo: repo, cache: c}
}

func (s *service) Upsert(ctx context.Context, actor auth.Actor, in dto.UpsertItemInput) (*models.CatalogItem, error) {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado); err != nil {
		return nil, err
	}

	in.OriginalSKU = strings.TrimSpace(in.OriginalSKU)
	in.SKU = strings.TrimSpace(in.SKU)
	in.PartType = strings.TrimSpace(in.PartType)
	in.Description = strings.TrimSpace(in.Description)
	in.UnitOfMeasure = strings.TrimSpace(in.UnitOfMeasure)
	in.UnitCount = strings.TrimSpace(in.UnitCount)
	in.UnitPrice = strings.TrimSpace(in.UnitPrice)

	if in.SKU == "" || in.PartType == "" || in.UnitCount == "" || in.UnitPrice == "" {
		return nil, apperr.Validation("SKU, part type, unit count and unit price are required")
	}

	unitCount, err := strconv.Atoi(in.UnitCount)
	if err != nil || unitCount < 0 {
		return nil, apperr.Validation("unit count must be a non-negative integer")
	}

	price, err := decimal.NewFromString(in.UnitPrice)
	if err != nil {
		return nil, apperr.Validation("unit price must be a number")
	}
	if price.IsNegative() {
		return nil, apperr.Validation("unit price must not be negative")
	}

	var item *models.CatalogItem
	if in.OriginalSKU != "" {
		item, err = s.repo.GetBySKU(ctx, in.OriginalSKU)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, apperr.NotFound("catalog item %q not found", in.OriginalSKU)
		}
		if in.SKU != item.SKU {
			other, err := s.repo.GetBySKU(ctx, in.SKU)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, apperr.Conflict(nil, "SKU %q already exists", in.SKU)
			}
		}
		item.SKU = in.SKU
		item.PartType = in.PartType
		item.Description = in.Description
		item.UnitOfMeasure = in.UnitOfMeasure
		item.UnitCount = unitCount
		item.UnitPrice = price.StringFixed(2)
		if err := s.repo.Update(ctx, item); err != nil {
			return nil, err
		}
	} else {
		existing, err := s.repo.GetBySKU(ctx, in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperr.Conflict(nil, "SKU %q already exists", in.SKU)
		}
		item = &models.CatalogItem{
			SKU:           in.SKU,
			PartType:      in.PartType,
			Description:   in.Description,
			UnitOfMeasure: in.UnitOfMeasure,
			UnitCount:     unitCount,
			UnitPrice:     price.StringFixed(2),
		}
		if err := s.repo.Create(ctx, item); err != nil {
			return nil, err
		}
	}

	s.cache.Del(ctx, catalogItemsCacheKey, inventoryListCacheKey)
	return item, nil
}

func (s *service) Delete(ctx context.Context, actor auth.Actor, ref string) error {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado); err != nil {
		return err
	}

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return apperr.Validation("item reference is required")
	}

	var item *models.CatalogItem
	var err error
	if id, convErr := strconv.ParseInt(ref, 10, 64); convErr == nil {
		item, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		// An all-digits ref may still be a SKU.
		if item == nil {
			item, err = s.repo.GetBySKU(ctx, ref)
		}
	} else {
		item, err = s.repo.GetBySKU(ctx, ref)
	}
	if err != nil {
		return err
	}
	if item == nil {
		return apperr.NotFound("catalog item %q not found", ref)
	}

	referenced, err := s.repo.HasInventory(ctx, item.ItemID)
	if err != nil {
		return err
	}
	if referenced {
		return apperr.Conflict(nil, "item %q still has an inventory record", item.SKU)
	}

	if err := s.repo.Delete(ctx, item.ItemID); err != nil {
		return err
	}

	s.cache.Del(ctx, catalogItemsCacheKey, inventoryListCacheKey)
	return nil
}

func (s *service) List(ctx context.Context, actor auth.Actor) ([]models.CatalogItem, error) {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado, auth.RoleConsultor); err != nil {
		return nil, err
	}

	if raw, ok := s.cache.Get(ctx, catalogItemsCacheKey); ok {
		var items []models.CatalogItem
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			return items, nil
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(items); err == nil {
		s.cache.Set(ctx, catalogItemsCacheKey, string(raw), cacheTTLMedium)
	}
	return items, nil
}
