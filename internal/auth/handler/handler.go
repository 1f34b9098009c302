package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"induparts-system/internal/apperr"
	"induparts-system/internal/auth"
	"induparts-system/internal/auth/service"
)

type AuthHTTPHandler struct {
	svc service.Service
}

func NewAuthHTTPHandler(svc service.Service) *AuthHTTPHandler {
	return &AuthHTTPHandler{svc: svc}
}

func (h *AuthHTTPHandler) success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func (h *AuthHTTPHandler) error(c *gin.Context, err error) {
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

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHTTPHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.error(c, apperr.Validation("invalid request body: %v", err))
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.error(c, err)
		return
	}

	h.success(c, gin.H{
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
		"name":       result.Actor.Name,
		"role":       result.Actor.Role,
	})
}

type changePasswordRequest struct {
	Current string `json:"current"`
	New     string `json:"new"`
	Confirm string `json:"confirm"`
}

func (h *AuthHTTPHandler) ChangePassword(c *gin.Context) {
	actor, ok := auth.ActorFrom(c.Request.Context())
	if !ok {
		h.error(c, apperr.Authorization("authentication required"))
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.error(c, apperr.Validation("invalid request body: %v", err))
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), actor, req.Current, req.New, req.Confirm); err != nil {
		h.error(c, err)
		return
	}

	h.success(c, gin.H{"message": "password updated"})
}
