package organization

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/contextutil"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/response"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("organization.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.GetAll(ctx)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) GetById(c *gin.Context) {
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.GetByID(ctx, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.Create(ctx, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.Update(ctx, c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	if err := h.svc.Delete(ctx, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetLogs(c *gin.Context) {
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	logs, err := h.svc.GetLogs(ctx, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, logs)
}
