package metrics

import (
	"github.com/gin-gonic/gin"

	"github.com/mattForge/OzoneForgePlanner/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, access middleware.AccessService) {
	m := r.Group("/metrics")
	m.Use(middleware.AuthMiddleware())
	{
		m.GET("/executive",
			middleware.ActiveOrg(),
			middleware.Authorize(access, "metrics", "read"),
			handler.GetExecutiveReport,
		)

		m.GET("/executive/summary",
			middleware.ActiveOrg(),
			middleware.RateLimitByUser(0.2, 1),
			middleware.Authorize(access, "metrics", "read"),
			handler.GetExecutiveSummary,
		)

		m.GET("/platform",
			middleware.Authorize(access, "metrics-platform", "read"),
			handler.GetPlatformReport,
		)
	}
}
