package task

import (
	"github.com/gin-gonic/gin"

	"github.com/mattForge/OzoneForgePlanner/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, access middleware.AccessService) {
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	tasks.Use(middleware.ActiveOrg())
	{
		tasks.GET("",
			middleware.Authorize(access, "task", "read"),
			handler.GetAll,
		)

		tasks.GET("/:id",
			middleware.Authorize(access, "task", "read"),
			handler.GetById,
		)

		tasks.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(access, "task", "create"),
			handler.Create,
		)

		tasks.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(access, "task", "update"),
			handler.Update,
		)

		tasks.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(access, "task", "delete"),
			handler.Delete,
		)
	}
}
