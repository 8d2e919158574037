package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/contextutil"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/response"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/token"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.Login(ctx, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// Rotate finalizes a pending credential rotation. It authenticates with
// the rotation token issued at login, not a session token.
func (h *Handler) Rotate(c *gin.Context) {
	raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok || raw == "" {
		response.FromError(c, apperror.ErrUnauthorized)
		return
	}

	claims, err := token.Parse(raw)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if claims.Purpose != token.PurposeRotation {
		response.FromError(c, token.ErrInvalidToken)
		return
	}

	var req RotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.FinalizeRotation(ctx, claims.UserID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.Refresh(ctx, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.GetMe(ctx, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// Logout is stateless; tokens simply age out. The endpoint exists so
// clients have a uniform place to end a session.
func (h *Handler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}
