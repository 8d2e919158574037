package attendance

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mattForge/OzoneForgePlanner/internal/shared/contextutil"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/response"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	orgID := c.GetString("org_id")
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.GetAllByOrg(ctx, orgID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Pulse(c *gin.Context) {
	orgID := c.GetString("org_id")
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.Pulse(ctx, orgID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}
