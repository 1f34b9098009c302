package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"induparts-system/internal/apperr"
	"induparts-system/internal/auth"
	"induparts-system/internal/customerorders"
	"induparts-system/internal/customerorders/dto"
)

type CustomerOrderHTTPHandler struct {
	svc customerorders.Service
}

func NewCustomerOrderHTTPHandler(svc customerorders.Service) *CustomerOrderHTTPHandler {
	return &CustomerOrderHTTPHandler{svc: svc}
}

func (h *CustomerOrderHTTPHandler) success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func (h *CustomerOrderHTTPHandler) error(c *gin.Context, err error) {
	msg := err.Error()
	if apperr.KindOf(err) == apperr.KindUnknown {
		// raw storage errors go to the request log, never to the caller
		_ = c.Error(err)
		msg = "internal error"
	}
	c.JSON(apperr.HTTPStatus(err), gin.H{
		"success": false,
		"error":   msg,
	})
}

func (h *CustomerOrderHTTPHandler) actor(c *gin.Context) (auth.Actor, bool) {
	actor, ok := auth.ActorFrom(c.Request.Context())
	if !ok {
		h.error(c, apperr.Authorization("authentication required"))
	}
	return actor, ok
}

func (h *CustomerOrderHTTPHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.error(c, apperr.Validation("invalid request body: %v", err))
		return
	}

	order, err := h.svc.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, order)
}

func (h *CustomerOrderHTTPHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	filter := dto.ListFilter{Status: c.Query("status")}
	orders, err := h.svc.List(c.Request.Context(), actor, filter)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, orders)
}

func (h *CustomerOrderHTTPHandler) SetStatus(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.error(c, apperr.Validation("order id must be numeric"))
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.error(c, apperr.Validation("invalid request body: %v", err))
		return
	}

	order, err := h.svc.SetStatus(c.Request.Context(), actor, dto.SetStatusInput{OrderID: orderID, Status: req.Status})
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, order)
}

func (h *CustomerOrderHTTPHandler) AddLineItem(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.error(c, apperr.Validation("order id must be numeric"))
		return
	}

	var req dto.AddLineItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.error(c, apperr.Validation("invalid request body: %v", err))
		return
	}
	req.OrderID = orderID

	item, err := h.svc.AddLineItem(c.Request.Context(), actor, req)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, item)
}

func (h *CustomerOrderHTTPHandler) RemoveLineItem(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	detailID, err := strconv.ParseInt(c.Param("detailID"), 10, 64)
	if err != nil {
		h.error(c, apperr.Validation("line item id must be numeric"))
		return
	}

	if err := h.svc.RemoveLineItem(c.Request.Context(), actor, detailID); err != nil {
		h.error(c, err)
		return
	}
	h.success(c, gin.H{"deleted": detailID})
}

func (h *CustomerOrderHTTPHandler) ListLineItems(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.error(c, apperr.Validation("order id must be numeric"))
		return
	}

	rows, err := h.svc.ListLineItems(c.Request.Context(), actor, orderID)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, rows)
}
