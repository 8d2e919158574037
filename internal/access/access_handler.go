package access

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mattForge/OzoneForgePlanner/internal/shared/response"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("access.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("access.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) GetCapabilities(c *gin.Context) {
	role := c.GetString("role")
	orgIDs, _ := c.Get("org_ids")
	memberOf, _ := orgIDs.([]string)

	res := h.svc.Capabilities(role, len(memberOf))
	res.OrgIDs = memberOf

	response.Success(c, http.StatusOK, res)
}
