package dto

// Numeric fields arrive as strings and are coerced during validation,
// mirroring the intake forms.

type CreateOrderInput struct {
	ClientName  string `json:"client_name"`
	OrderCode   string `json:"order_code"`
	Description string `json:"description"`
	Size        string `json:"size"`
	Quantity    string `json:"quantity"`
	Status      string `json:"status"`
}

type SetStatusInput struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type ListFilter struct {
	Status string `form:"status"`
}

type AddLineItemInput struct {
	OrderID  int64  `json:"order_id"`
	ItemID   int64  `json:"item_id"`
	Quantity string `json:"quantity"`
	Size     string `json:"size"`
}

// LineItemRow joins a detail row with its catalog part. SKU and
// PartType are empty when the part was deleted after the fact.
type LineItemRow struct {
	DetailID int64  `json:"detail_id"`
	OrderID  int64  `json:"order_id"`
	ItemID   *int64 `json:"item_id"`
	SKU      string `json:"sku"`
	PartType string `json:"part_type"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}
