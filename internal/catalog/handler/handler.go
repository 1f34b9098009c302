package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"induparts-system/internal/apperr"
	"induparts-system/internal/auth"
	"induparts-system/internal/catalog"
	"induparts-system/internal/catalog/dto"
)

type CatalogHTTPHandler struct {
	svc catalog.Service
}

func NewCatalogHTTPHandler(svc catalog.Service) *CatalogHTTPHandler {
	return &CatalogHTTPHandler{svc: svc}
}

func (h *CatalogHTTPHandler) success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func (h *CatalogHTTPHandler) error(c *gin.Context, err error) {
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

func (h *CatalogHTTPHandler) actor(c *gin.Context) (auth.Actor, bool) {
	actor, ok := auth.ActorFrom(c.Request.Context())
	if !ok {
		h.error(c, apperr.Authorization("authentication required"))
	}
	return actor, ok
}

func (h *CatalogHTTPHandler) Upsert(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.UpsertItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.error(c, apperr.Validation("invalid request body: %v", err))
		return
	}

	item, err := h.svc.Upsert(c.Request.Context(), actor, req)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, item)
}

func (h *CatalogHTTPHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), actor, c.Param("ref")); err != nil {
		h.error(c, err)
		return
	}
	h.success(c, gin.H{"deleted": c.Param("ref")})
}

func (h *CatalogHTTPHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	items, err := h.svc.List(c.Request.Context(), actor)
	if err != nil {
		h.error(c, err)
		return
	}
	h.success(c, items)
}
