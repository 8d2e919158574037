package organization

import (
	"github.com/gin-gonic/gin"

	"github.com/mattForge/OzoneForgePlanner/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, access middleware.AccessService) {
	orgs := r.Group("/organizations")
	orgs.Use(middleware.AuthMiddleware())
	{
		orgs.GET("",
			middleware.Authorize(access, "organization", "read"),
			handler.GetAll,
		)

		orgs.GET("/:id",
			middleware.Authorize(access, "organization", "read"),
			handler.GetById,
		)

		orgs.GET("/:id/logs",
			middleware.Authorize(access, "organization", "read"),
			handler.GetLogs,
		)

		orgs.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(access, "organization", "create"),
			handler.Create,
		)

		orgs.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(access, "organization", "update"),
			handler.Update,
		)

		orgs.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(access, "organization", "delete"),
			handler.Delete,
		)
	}
}
