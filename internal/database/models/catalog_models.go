package models

// CatalogItem is one sellable/purchasable part definition. The SKU is the
// external identifier; ItemID stays internal.
type CatalogItem struct {
	ItemID        int64  `gorm:"column:id_item;primaryKey;autoIncrement" json:"item_id"`
	SKU           string `gorm:"column:sku;size:100;uniqueIndex;not null" json:"sku"`
	PartType      string `gorm:"column:tipo_de_pieza;size:100;not null" json:"part_type"`
	Description   string `gorm:"column:descripcion;size:255" json:"description"`
	UnitOfMeasure string `gorm:"column:medida;size:50" json:"unit_of_measure"`
	UnitCount     int    `gorm:"column:unidades;not null" json:"unit_count"`
	UnitPrice     string `gorm:"column:precio;type:decimal(12,2);not null" json:"unit_price"`
}

func (CatalogItem) TableName() string { return "catalogo" }

// InventoryRecord is the stock ledger row, 1:1 with a catalog item.
// Stock is an absolute level, adjusted only through explicit sets.
type InventoryRecord struct {
	ItemID   int64 `gorm:"column:id_item;primaryKey" json:"item_id"`
	Stock    int   `gorm:"column:stock;not null" json:"stock"`
	StockMin int   `gorm:"column:stock_min;not null" json:"stock_min"`

	Item *CatalogItem `gorm:"foreignKey:ItemID;references:ItemID" json:"item,omitempty"`
}

func (InventoryRecord) TableName() string { return "inventario" }
