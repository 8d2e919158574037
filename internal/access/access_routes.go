package access

import (
	"github.com/gin-gonic/gin"

	"github.com/mattForge/OzoneForgePlanner/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/capabilities",
		middleware.AuthMiddleware(),
		handler.GetCapabilities,
	)
}
