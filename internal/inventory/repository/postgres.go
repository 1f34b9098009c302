package repository

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"induparts-system/internal/database/models"
	"induparts-system/internal/inventory"
)

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) inventory.Repository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Get(ctx context.Context, itemID int64) (*models.InventoryRecord, error) {
	var rec models.InventoryRecord
	err := r.db.WithContext(ctx).First(&rec, "id_item = ?", itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "query inventory record")
	}
	return &rec, nil
}

func (r *inventoryRepository) Create(ctx context.Context, rec *models.InventoryRecord) error {
	return pkgerrors.Wrap(r.db.WithContext(ctx).Create(rec).Error, "create inventory record")
}

func (r *inventoryRepository) Save(ctx context.Context, rec *models.InventoryRecord) error {
	return pkgerrors.Wrap(r.db.WithContext(ctx).Save(rec).Error, "save inventory record")
}

func (r *inventoryRepository) List(ctx context.Context) ([]models.InventoryRecord, error) {
	var recs []models.InventoryRecord
	err := r.db.WithContext(ctx).
		Preload("Item").
		Joins("JOIN catalogo ON catalogo.id_item = inventario.id_item").
		Order("catalogo.tipo_de_pieza, catalogo.sku").
		Find(&recs).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list inventory records")
	}
	return recs, nil
}

func (r *inventoryRepository) CatalogExists(ctx context.Context, itemID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CatalogItem{}).
		Where("id_item = ?", itemID).
		Count(&count).Error
	if err != nil {
		return false, pkgerrors.Wrap(err, "count catalog item")
	}
	return count > 0, nil
}
