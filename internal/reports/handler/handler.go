package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"induparts-system/internal/apperr"
	"induparts-system/internal/auth"
	"induparts-system/internal/reports"
)

type ReportsHTTPHandler struct {
	svc reports.Service
}

func NewReportsHTTPHandler(svc reports.Service) *ReportsHTTPHandler {
	return &ReportsHTTPHandler{svc: svc}
}

func (h *ReportsHTTPHandler) success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func (h *ReportsHTTPHandler) error(c *gin.Context, err error) {
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

func (h *ReportsHTTPHandler) actor(c *gin.Context) (auth.Actor, bool) {
	actor, ok := auth.ActorFrom(c.Request.Context())
	if !ok {
		h.error(c, apperr.Authorization("authentication required"))
	}
	return actor, ok
}

func (h *ReportsHTTPHandler) Catalog(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	rows, err := h.svc.Catalog(c.Request.Context(), actor)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, rows)
}

func (h *ReportsHTTPHandler) Inventory(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	rows, err := h.svc.Inventory(c.Request.Context(), actor)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, rows)
}

func (h *ReportsHTTPHandler) CustomerOrders(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	rows, err := h.svc.CustomerOrders(c.Request.Context(), actor)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, rows)
}

func (h *ReportsHTTPHandler) SupplierOrders(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	rows, err := h.svc.SupplierOrders(c.Request.Context(), actor)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, rows)
}
