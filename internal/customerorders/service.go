package customerorders

import (
	"context"

	"induparts-system/internal/auth"
	"induparts-system/internal/customerorders/dto"
	"induparts-system/internal/database/models"
)

type Service interface {
	// Create coerces and validates the intake form. An omitted status
	// defaults to pending; an explicit one is validated against the
	// enum exactly as SetStatus validates it.
	Create(ctx context.Context, actor auth.Actor, in dto.CreateOrderInput) (*models.CustomerOrder, error)

	// List returns orders newest first. A filter value outside the
	// enum is ignored rather than rejected.
	List(ctx context.Context, actor auth.Actor, filter dto.ListFilter) ([]models.CustomerOrder, error)

	// SetStatus replaces the status and refreshes StatusChangedAt. Any
	// status may follow any other.
	SetStatus(ctx context.Context, actor auth.Actor, in dto.SetStatusInput) (*models.CustomerOrder, error)

	// Line item operations fail with an unavailability error when the
	// detail table was not provisioned.
	AddLineItem(ctx context.Context, actor auth.Actor, in dto.AddLineItemInput) (*models.OrderLineItem, error)
	RemoveLineItem(ctx context.Context, actor auth.Actor, detailID int64) error
	ListLineItems(ctx context.Context, actor auth.Actor, orderID int64) ([]dto.LineItemRow, error)

	// LineItemsAvailable reports the capability resolved at startup.
	LineItemsAvailable() bool
}
