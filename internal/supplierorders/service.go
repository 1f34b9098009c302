package supplierorders

import (
	"context"

	"induparts-system/internal/auth"
	"induparts-system/internal/database/models"
	"induparts-system/internal/supplierorders/dto"
)

type Service interface {
	// Create coerces and validates the intake form. The stored status
	// is always pending, whatever the caller sent.
	Create(ctx context.Context, actor auth.Actor, in dto.CreateOrderInput) (*models.SupplierOrder, error)

	// List returns orders newest first. A filter value outside the
	// enum is ignored rather than rejected.
	List(ctx context.Context, actor auth.Actor, filter dto.ListFilter) ([]models.SupplierOrder, error)

	// SetStatus replaces the status and refreshes StatusChangedAt. Any
	// status may follow any other.
	SetStatus(ctx context.Context, actor auth.Actor, in dto.SetStatusInput) (*models.SupplierOrder, error)
}
