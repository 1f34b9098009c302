package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"induparts-system/internal/apperr"
	"induparts-system/internal/auth"
	"induparts-system/internal/inventory"
	"induparts-system/internal/inventory/dto"
)

type InventoryHTTPHandler struct {
	svc inventory.Service
}

func NewInventoryHTTPHandler(svc inventory.Service) *InventoryHTTPHandler {
	return &InventoryHTTPHandler{svc: svc}
}

func (h *InventoryHTTPHandler) success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func (h *InventoryHTTPHandler) error(c *gin.Context, err error) {
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

func (h *InventoryHTTPHandler) actor(c *gin.Context) (auth.Actor, bool) {
	actor, ok := auth.ActorFrom(c.Request.Context())
	if !ok {
		h.error(c, apperr.Authorization("authentication required"))
	}
	return actor, ok
}

func (h *InventoryHTTPHandler) Provision(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.ProvisionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.error(c, apperr.Validation("invalid request body: %v", err))
		return
	}

	rec, err := h.svc.Provision(c.Request.Context(), actor, req)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, rec)
}

func (h *InventoryHTTPHandler) SetStock(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.SetStockInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.error(c, apperr.Validation("invalid request body: %v", err))
		return
	}

	rec, err := h.svc.SetStock(c.Request.Context(), actor, req)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, rec)
}

func (h *InventoryHTTPHandler) SetStockMin(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.SetStockMinInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.error(c, apperr.Validation("invalid request body: %v", err))
		return
	}

	rec, err := h.svc.SetStockMin(c.Request.Context(), actor, req)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, rec)
}

func (h *InventoryHTTPHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	rows, err := h.svc.List(c.Request.Context(), actor)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, rows)
}
