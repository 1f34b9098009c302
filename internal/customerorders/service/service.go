package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"induparts-system/internal/apperr"
	"induparts-system/internal/auth"
	"induparts-system/internal/cache"
	"induparts-system/internal/customerorders"
	"induparts-system/internal/customerorders/dto"
	"induparts-system/internal/database/models"
)

const (
	customerOrdersCacheKey = "orders:customers"
	cacheTTLShort          = 5 * time.Minute
)

type service struct {
	repo      customerorders.Repository
	catalog   customerorders.CatalogLookup
	cache     cache.Cache
	lineItems bool
	now       func() time.Time
}

func NewService(repo customerorders.Repository, catalog customerorders.CatalogLookup, c cache.Cache, lineItems bool) customerorders.Service {
	return &service{repo: repo, catalog: catalog, cache: c, lineItems: lineItems, now: time.Now}
}

func (s *service) Create(ctx context.Context, actor auth.Actor, in dto.CreateOrderInput) (*models.CustomerOrder, error) {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado); err != nil {
		return nil, err
	}

	in.ClientName = strings.TrimSpace(in.ClientName)
	in.OrderCode = strings.TrimSpace(in.OrderCode)
	in.Description = strings.TrimSpace(in.Description)
	in.Size = strings.TrimSpace(in.Size)
	in.Quantity = strings.TrimSpace(in.Quantity)
	in.Status = strings.TrimSpace(in.Status)

	if in.ClientName == "" || in.OrderCode == "" || in.Description == "" || in.Size == "" || in.Quantity == "" {
		return nil, apperr.Validation("client name, order code, description, size and quantity are required")
	}

	qty, err := strconv.Atoi(in.Quantity)
	if err != nil || qty <= 0 {
		return nil, apperr.Validation("quantity must be a positive integer")
	}

	order := &models.CustomerOrder{
		ClientName:  in.ClientName,
		OrderCode:   in.OrderCode,
		Description: in.Description,
		Size:        in.Size,
		Quantity:    qty,
		Status:      string(customerorders.StatusPending),
	}
	if in.Status != "" {
		status, ok := customerorders.ParseStatus(in.Status)
		if !ok {
			return nil, apperr.Validation("unknown order status %q", in.Status)
		}
		order.Status = string(status)
		now := s.now()
		order.StatusChangedAt = &now
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.cache.Del(ctx, customerOrdersCacheKey)
	return order, nil
}

func (s *service) List(ctx context.Context, actor auth.Actor, filter dto.ListFilter) ([]models.CustomerOrder, error) {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado, auth.RoleConsultor); err != nil {
		return nil, err
	}

	// A filter value outside the enum degrades to the unfiltered list.
	statusFilter := ""
	if status, ok := customerorders.ParseStatus(filter.Status); ok {
		statusFilter = string(status)
	}

	if statusFilter == "" {
		if raw, ok := s.cache.Get(ctx, customerOrdersCacheKey); ok {
			var orders []models.CustomerOrder
			if err := json.Unmarshal([]byte(raw), &orders); err == nil {
				return orders, nil
			}
		}
	}

	orders, err := s.repo.List(ctx, statusFilter)
	if err != nil {
		return nil, err
	}

	if statusFilter == "" {
		if raw, err := json.Marshal(orders); err == nil {
			s.cache.Set(ctx, customerOrdersCacheKey, string(raw), cacheTTLShort)
		}
	}
	return orders, nil
}

func (s *service) SetStatus(ctx context.Context, actor auth.Actor, in dto.SetStatusInput) (*models.CustomerOrder, error) {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado); err != nil {
		return nil, err
	}

	status, ok := customerorders.ParseStatus(in.Status)
	if !ok {
		return nil, apperr.Validation("unknown order status %q", in.Status)
	}

	order, err := s.repo.Get(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("customer order %d not found", in.OrderID)
	}

	changedAt := s.now()
	if err := s.repo.UpdateStatus(ctx, in.OrderID, string(status), changedAt); err != nil {
		return nil, err
	}

	order.Status = string(status)
	order.StatusChangedAt = &changedAt

	s.cache.Del(ctx, customerOrdersCacheKey)
	return order, nil
}

func (s *service) AddLineItem(ctx context.Context, actor auth.Actor, in dto.AddLineItemInput) (*models.OrderLineItem, error) {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado); err != nil {
		return nil, err
	}
	if !s.lineItems {
		return nil, apperr.Unavailable("order line items are not provisioned")
	}

	in.Quantity = strings.TrimSpace(in.Quantity)
	if in.Quantity == "" {
		return nil, apperr.Validation("quantity is required")
	}
	qty, err := strconv.Atoi(in.Quantity)
	if err != nil || qty <= 0 {
		return nil, apperr.Validation("quantity must be a positive integer")
	}

	order, err := s.repo.Get(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("customer order %d not found", in.OrderID)
	}

	part, err := s.catalog.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, apperr.NotFound("catalog item %d not found", in.ItemID)
	}

	itemID := in.ItemID
	item := &models.OrderLineItem{
		OrderID:  in.OrderID,
		ItemID:   &itemID,
		Quantity: qty,
		Size:     strings.TrimSpace(in.Size),
	}
	if err := s.repo.CreateLineItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) RemoveLineItem(ctx context.Context, actor auth.Actor, detailID int64) error {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado); err != nil {
		return err
	}
	if !s.lineItems {
		return apperr.Unavailable("order line items are not provisioned")
	}

	item, err := s.repo.GetLineItem(ctx, detailID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperr.NotFound("line item %d not found", detailID)
	}
	return s.repo.DeleteLineItem(ctx, detailID)
}

func (s *service) ListLineItems(ctx context.Context, actor auth.Actor, orderID int64) ([]dto.LineItemRow, error) {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado); err != nil {
		return nil, err
	}
	if !s.lineItems {
		return nil, apperr.Unavailable("order line items are not provisioned")
	}

	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("customer order %d not found", orderID)
	}
	return s.repo.ListLineItems(ctx, orderID)
}

func (s *service) LineItemsAvailable() bool { return s.lineItems }
