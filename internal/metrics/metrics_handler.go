package metrics

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
	l := zap.L().Named("metrics.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("metrics.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) GetExecutiveReport(c *gin.Context) {
	orgID := c.GetString("org_id")
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.ExecutiveReport(ctx, orgID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) GetExecutiveSummary(c *gin.Context) {
	orgID := c.GetString("org_id")
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.ExecutiveSummary(ctx, orgID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) GetPlatformReport(c *gin.Context) {
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.PlatformReport(ctx)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}
