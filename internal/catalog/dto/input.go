package dto

// UpsertItemInput carries catalog form fields. Numeric fields arrive as
// strings and are coerced during validation, mirroring the intake forms.
type UpsertItemInput struct {
	OriginalSKU   string `json:"original_sku"`
	SKU           string `json:"sku"`
	PartType      string `json:"part_type"`
	Description   string `json:"description"`
	UnitOfMeasure string `json:"unit_of_measure"`
	UnitCount     string `json:"unit_count"`
	UnitPrice     string `json:"unit_price"`
}
