package repository

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"induparts-system/internal/database/models"
	"induparts-system/internal/supplierorders"
)

type supplierOrderRepository struct {
	db *gorm.DB
}

func NewSupplierOrderRepository(db *gorm.DB) supplierorders.Repository {
	return &supplierOrderRepository{db: db}
}

func (r *supplierOrderRepository) Create(ctx context.Context, order *models.SupplierOrder) error {
	err := r.db.WithContext(ctx).Create(order).Error
	return pkgerrors.Wrap(err, "create supplier order")
}

func (r *supplierOrderRepository) Get(ctx context.Context, orderID int64) (*models.SupplierOrder, error) {
	var order models.SupplierOrder
	err := r.db.WithContext(ctx).First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "query supplier order")
	}
	return &order, nil
}

func (r *supplierOrderRepository) List(ctx context.Context, status string) ([]models.SupplierOrder, error) {
	q := r.db.WithContext(ctx).Order("id_pedidop DESC")
	if status != "" {
		q = q.Where("estado = ?", status)
	}
	var orders []models.SupplierOrder
	if err := q.Find(&orders).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "list supplier orders")
	}
	return orders, nil
}

func (r *supplierOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status string, changedAt time.Time) error {
	err := r.db.WithContext(ctx).Model(&models.SupplierOrder{}).
		Where("id_pedidop = ?", orderID).
		Updates(map[string]interface{}{
			"estado":       status,
			"fecha_estado": changedAt,
		}).Error
	return pkgerrors.Wrap(err, "update supplier order status")
}
