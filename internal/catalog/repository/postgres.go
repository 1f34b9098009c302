package repository

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"induparts-system/internal/apperr"
	"induparts-system/internal/catalog"
	"induparts-system/internal/database/models"
)

type catalogRepository struct {
	db        *gorm.DB
	lineItems bool
}

func NewCatalogRepository(db *gorm.DB, lineItems bool) catalog.Repository {
	return &catalogRepository{db: db, lineItems: lineItems}
}

func (r *catalogRepository) GetByID(ctx context.Context, id int64) (*models.CatalogItem, error) {
	var item models.CatalogItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "query catalog item by id")
	}
	return &item, nil
}

func (r *catalogRepository) GetBySKU(ctx context.Context, sku string) (*models.CatalogItem, error) {
	var item models.CatalogItem
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "query catalog item by sku")
	}
	return &item, nil
}

func (r *catalogRepository) Create(ctx context.Context, item *models.CatalogItem) error {
	err := r.db.WithContext(ctx).Create(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict(err, "SKU %q already exists", item.SKU)
	}
	return pkgerrors.Wrap(err, "create catalog item")
}

func (r *catalogRepository) Update(ctx context.Context, item *models.CatalogItem) error {
	err := r.db.WithContext(ctx).Save(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict(err, "SKU %q already exists", item.SKU)
	}
	return pkgerrors.Wrap(err, "update catalog item")
}

func (r *catalogRepository) Delete(ctx context.Context, itemID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.lineItems {
			if err := tx.Model(&models.OrderLineItem{}).
				Where("id_pieza = ?", itemID).
				Update("id_pieza", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.CatalogItem{}, itemID).Error
	})
	return pkgerrors.Wrap(err, "delete catalog item")
}

func (r *catalogRepository) HasInventory(ctx context.Context, itemID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.InventoryRecord{}).
		Where("id_item = ?", itemID).
		Count(&count).Error
	if err != nil {
		return false, pkgerrors.Wrap(err, "count inventory references")
	}
	return count > 0, nil
}

func (r *catalogRepository) List(ctx context.Context) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	err := r.db.WithContext(ctx).
		Order("tipo_de_pieza, sku").
		Find(&items).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list catalog items")
	}
	return items, nil
}
