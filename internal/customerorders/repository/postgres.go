package repository

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"induparts-system/internal/customerorders"
	"induparts-system/internal/customerorders/dto"
	"induparts-system/internal/database/models"
)

type customerOrderRepository struct {
	db *gorm.DB
}

func NewCustomerOrderRepository(db *gorm.DB) customerorders.Repository {
	return &customerOrderRepository{db: db}
}

func (r *customerOrderRepository) Create(ctx context.Context, order *models.CustomerOrder) error {
	err := r.db.WithContext(ctx).Create(order).Error
	return pkgerrors.Wrap(err, "create customer order")
}

func (r *customerOrderRepository) Get(ctx context.Context, orderID int64) (*models.CustomerOrder, error) {
	var order models.CustomerOrder
	err := r.db.WithContext(ctx).First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "query customer order")
	}
	return &order, nil
}

func (r *customerOrderRepository) List(ctx context.Context, status string) ([]models.CustomerOrder, error) {
	q := r.db.WithContext(ctx).Order("id_pedidoc DESC")
	if status != "" {
		q = q.Where("estado = ?", status)
	}
	var orders []models.CustomerOrder
	if err := q.Find(&orders).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "list customer orders")
	}
	return orders, nil
}

func (r *customerOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status string, changedAt time.Time) error {
	err := r.db.WithContext(ctx).Model(&models.CustomerOrder{}).
		Where("id_pedidoc = ?", orderID).
		Updates(map[string]interface{}{
			"estado":       status,
			"fecha_estado": changedAt,
		}).Error
	return pkgerrors.Wrap(err, "update customer order status")
}

func (r *customerOrderRepository) CreateLineItem(ctx context.Context, item *models.OrderLineItem) error {
	err := r.db.WithContext(ctx).Create(item).Error
	return pkgerrors.Wrap(err, "create order line item")
}

func (r *customerOrderRepository) GetLineItem(ctx context.Context, detailID int64) (*models.OrderLineItem, error) {
	var item models.OrderLineItem
	err := r.db.WithContext(ctx).First(&item, detailID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "query order line item")
	}
	return &item, nil
}

func (r *customerOrderRepository) DeleteLineItem(ctx context.Context, detailID int64) error {
	err := r.db.WithContext(ctx).Delete(&models.OrderLineItem{}, detailID).Error
	return pkgerrors.Wrap(err, "delete order line item")
}

func (r *customerOrderRepository) ListLineItems(ctx context.Context, orderID int64) ([]dto.LineItemRow, error) {
	var rows []dto.LineItemRow
	err := r.db.WithContext(ctx).Model(&models.OrderLineItem{}).
		Select("pedido_detalle.id_detalle AS detail_id",
			"pedido_detalle.id_pedido AS order_id",
			"pedido_detalle.id_pieza AS item_id",
			"COALESCE(catalogo.sku, '') AS sku",
			"COALESCE(catalogo.tipo_de_pieza, '') AS part_type",
			"pedido_detalle.cantidad AS quantity",
			"pedido_detalle.medida AS size").
		Joins("LEFT JOIN catalogo ON catalogo.id_item = pedido_detalle.id_pieza").
		Where("pedido_detalle.id_pedido = ?", orderID).
		Order("pedido_detalle.id_detalle").
		Scan(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list order line items")
	}
	return rows, nil
}
