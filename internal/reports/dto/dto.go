package dto

// Display-ready report rows. Currency fields carry two decimals and
// timestamps are pre-rendered, so consumers format nothing themselves.

type CatalogReportRow struct {
	SKU           string `json:"sku"`
	PartType      string `json:"part_type"`
	Description   string `json:"description"`
	UnitOfMeasure string `json:"unit_of_measure"`
	UnitCount     int    `json:"unit_count"`
	UnitPrice     string `json:"unit_price"`
}

type InventoryReportRow struct {
	SKU        string `json:"sku"`
	PartType   string `json:"part_type"`
	Stock      int    `json:"stock"`
	StockMin   int    `json:"stock_min"`
	LowStock   bool   `json:"low_stock"`
	UnitPrice  string `json:"unit_price"`
	StockValue string `json:"stock_value"`
}

type CustomerOrderReportRow struct {
	OrderID         int64  `json:"order_id"`
	ClientName      string `json:"client_name"`
	OrderCode       string `json:"order_code"`
	Description     string `json:"description"`
	Size            string `json:"size"`
	Quantity        int    `json:"quantity"`
	Status          string `json:"status"`
	StatusChangedAt string `json:"status_changed_at"`
}

type SupplierOrderReportRow struct {
	OrderID         int64  `json:"order_id"`
	SupplierName    string `json:"supplier_name"`
	OrderCode       string `json:"order_code"`
	Description     string `json:"description"`
	Size            string `json:"size"`
	Quantity        int    `json:"quantity"`
	Status          string `json:"status"`
	StatusChangedAt string `json:"status_changed_at"`
}
