package dto

// Numeric fields arrive as strings and are coerced during validation,
// mirroring the intake forms.

type CreateOrderInput struct {
	SupplierName string `json:"supplier_name"`
	OrderCode    string `json:"order_code"`
	Description  string `json:"description"`
	Size         string `json:"size"`
	Quantity     string `json:"quantity"`
	// Status is accepted and discarded: new supplier orders always
	// start out pending.
	Status string `json:"status"`
}

type SetStatusInput struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type ListFilter struct {
	Status string `form:"status"`
}
