package dto

// Numeric fields arrive as strings and are coerced during validation,
// mirroring the intake forms.

type ProvisionInput struct {
	ItemID   int64  `json:"item_id"`
	Stock    string `json:"stock"`
	StockMin string `json:"stock_min"`
}

type SetStockInput struct {
	ItemID   int64  `json:"item_id"`
	NewStock string `json:"new_stock"`
}

type SetStockMinInput struct {
	ItemID   int64  `json:"item_id"`
	StockMin string `json:"stock_min"`
}

// InventoryRow is the joined, display-ready view consumed by pages and
// reports.
type InventoryRow struct {
	ItemID        int64  `json:"item_id"`
	SKU           string `json:"sku"`
	PartType      string `json:"part_type"`
	Description   string `json:"description"`
	UnitOfMeasure string `json:"unit_of_measure"`
	UnitPrice     string `json:"unit_price"`
	Stock         int    `json:"stock"`
	StockMin      int    `json:"stock_min"`
	LowStock      bool   `json:"low_stock"`
}
