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
	"induparts-system/internal/database/models"
	"induparts-system/internal/supplierorders"
	"induparts-system/internal/supplierorders/dto"
)

const (
	supplierOrdersCacheKey = "orders:suppliers"
	cacheTTLShort          = 5 * time.Minute
)

type service struct {
	repo  supplierorders.Repository
	cache cache.Cache
	now   func() time.Time
}

func NewService(repo supplierorders.Repository, c cache.Cache) supplierorders.Service {
	return &service{repo: repo, cache: c, now: time.Now}
}

func (s *service) Create(ctx context.Context, actor auth.Actor, in dto.CreateOrderInput) (*models.SupplierOrder, error) {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado); err != nil {
		return nil, err
	}

	in.SupplierName = strings.TrimSpace(in.SupplierName)
	in.OrderCode = strings.TrimSpace(in.OrderCode)
	in.Description = strings.TrimSpace(in.Description)
	in.Size = strings.TrimSpace(in.Size)
	in.Quantity = strings.TrimSpace(in.Quantity)

	if in.SupplierName == "" || in.OrderCode == "" || in.Description == "" || in.Size == "" || in.Quantity == "" {
		return nil, apperr.Validation("supplier name, order code, description, size and quantity are required")
	}

	qty, err := strconv.Atoi(in.Quantity)
	if err != nil || qty <= 0 {
		return nil, apperr.Validation("quantity must be a positive integer")
	}

	// The intake form may carry a status; it is ignored here. Only
	// SetStatus moves a supplier order out of pending.
	order := &models.SupplierOrder{
		SupplierName: in.SupplierName,
		OrderCode:    in.OrderCode,
		Description:  in.Description,
		Size:         in.Size,
		Quantity:     qty,
		Status:       string(supplierorders.StatusPending),
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.cache.Del(ctx, supplierOrdersCacheKey)
	return order, nil
}

func (s *service) List(ctx context.Context, actor auth.Actor, filter dto.ListFilter) ([]models.SupplierOrder, error) {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado); err != nil {
		return nil, err
	}

	// A filter value outside the enum degrades to the unfiltered list.
	statusFilter := ""
	if status, ok := supplierorders.ParseStatus(filter.Status); ok {
		statusFilter = string(status)
	}

	if statusFilter == "" {
		if raw, ok := s.cache.Get(ctx, supplierOrdersCacheKey); ok {
			var orders []models.SupplierOrder
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
			s.cache.Set(ctx, supplierOrdersCacheKey, string(raw), cacheTTLShort)
		}
	}
	return orders, nil
}

func (s *service) SetStatus(ctx context.Context, actor auth.Actor, in dto.SetStatusInput) (*models.SupplierOrder, error) {
	if err := auth.Require(actor, auth.RoleAdmin, auth.RoleEmpleado); err != nil {
		return nil, err
	}

	status, ok := supplierorders.ParseStatus(in.Status)
	if !ok {
		return nil, apperr.Validation("unknown order status %q", in.Status)
	}

	order, err := s.repo.Get(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("supplier order %d not found", in.OrderID)
	}

	changedAt := s.now()
	if err := s.repo.UpdateStatus(ctx, in.OrderID, string(status), changedAt); err != nil {
		return nil, err
	}

	order.Status = string(status)
	order.StatusChangedAt = &changedAt

	s.cache.Del(ctx, supplierOrdersCacheKey)
	return order, nil
}
