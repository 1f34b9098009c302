package models

import "time"

// CustomerOrder. ClientName is free text on purpose: historical orders
// must survive client deletion, so there is no foreign key here.
type CustomerOrder struct {
	OrderID         int64      `gorm:"column:id_pedidoc;primaryKey;autoIncrement" json:"order_id"`
	ClientName      string     `gorm:"column:cliente;size:255;not null" json:"client_name"`
	OrderCode       string     `gorm:"column:codigo_pedido;size:100;not null" json:"order_code"`
	Description     string     `gorm:"column:descripcion;size:255;not null" json:"description"`
	Size            string     `gorm:"column:medida;size:100" json:"size"`
	Quantity        int        `gorm:"column:cantidad;not null" json:"quantity"`
	Status          string     `gorm:"column:estado;size:32;not null" json:"status"`
	StatusChangedAt *time.Time `gorm:"column:fecha_estado" json:"status_changed_at"`
}

func (CustomerOrder) TableName() string { return "pedidos_clientes" }

// SupplierOrder mirrors CustomerOrder with its own status vocabulary
// (received instead of delivered).
type SupplierOrder struct {
	OrderID         int64      `gorm:"column:id_pedidop;primaryKey;autoIncrement" json:"order_id"`
	SupplierName    string     `gorm:"column:proveedor;size:255;not null" json:"supplier_name"`
	OrderCode       string     `gorm:"column:codigo_pedido;size:100;not null" json:"order_code"`
	Description     string     `gorm:"column:descripcion;size:255;not null" json:"description"`
	Size            string     `gorm:"column:medida;size:100" json:"size"`
	Quantity        int        `gorm:"column:cantidad;not null" json:"quantity"`
	Status          string     `gorm:"column:estado;size:32;not null" json:"status"`
	StatusChangedAt *time.Time `gorm:"column:fecha_estado" json:"status_changed_at"`
}

func (SupplierOrder) TableName() string { return "pedidos_proveedores" }

// OrderLineItem lives in the optional pedido_detalle table. ItemID is
// nullable so a detail row survives removal of the referenced part.
type OrderLineItem struct {
	DetailID int64  `gorm:"column:id_detalle;primaryKey;autoIncrement" json:"detail_id"`
	OrderID  int64  `gorm:"column:id_pedido;index;not null" json:"order_id"`
	ItemID   *int64 `gorm:"column:id_pieza" json:"item_id"`
	Quantity int    `gorm:"column:cantidad;not null" json:"quantity"`
	Size     string `gorm:"column:medida;size:100" json:"size"`
}

func (OrderLineItem) TableName() string { return "pedido_detalle" }
