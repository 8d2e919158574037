package team

import (
	"github.com/gin-gonic/gin"

	"github.com/mattForge/OzoneForgePlanner/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, access middleware.AccessService) {
	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	teams.Use(middleware.ActiveOrg())
	{
		teams.GET("",
			middleware.Authorize(access, "team", "read"),
			handler.GetAll,
		)

		teams.GET("/:id",
			middleware.Authorize(access, "team", "read"),
			handler.GetById,
		)

		teams.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(access, "team", "create"),
			handler.Create,
		)

		teams.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(access, "team", "update"),
			handler.Update,
		)

		teams.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(access, "team", "delete"),
			handler.Delete,
		)
	}
}
