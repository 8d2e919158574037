package user

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mattForge/OzoneForgePlanner/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	access middleware.AccessService,
	logger *zap.Logger,
) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	users.Use(middleware.ContextLogger(logger))
	{
		// Own-profile status switch; every role except SUPER_USER has one.
		users.PATCH("/me/status",
			middleware.ActiveOrg(),
			middleware.RateLimitByUser(1, 3),
			middleware.Authorize(access, "profile", "update"),
			handler.UpdateMyStatus,
		)

		users.GET("",
			middleware.ActiveOrg(),
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(access, "user", "read"),
			handler.GetAll,
		)

		users.GET("/:id",
			middleware.ActiveOrg(),
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(access, "user", "read"),
			handler.GetById,
		)

		users.POST("",
			middleware.ActiveOrg(),
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(access, "user", "create"),
			handler.Create,
		)

		users.PUT("/:id",
			middleware.ActiveOrg(),
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(access, "user", "update"),
			handler.Update,
		)

		users.DELETE("/:id",
			middleware.ActiveOrg(),
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(access, "user", "delete"),
			handler.Delete,
		)

		users.POST("/:id/reset-key",
			middleware.ActiveOrg(),
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(access, "credential", "reset"),
			handler.ResetSecurityKey,
		)
	}

	// Admin provisioning is platform scope, SUPER_USER only.
	admins := r.Group("/admins")
	admins.Use(middleware.AuthMiddleware())
	admins.Use(middleware.ContextLogger(logger))
	{
		admins.GET("",
			middleware.Authorize(access, "admin", "read"),
			handler.GetAdmins,
		)

		admins.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(access, "admin", "create"),
			handler.CreateAdmin,
		)

		admins.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(access, "admin", "update"),
			handler.Update,
		)

		admins.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(access, "admin", "delete"),
			handler.Delete,
		)

		admins.POST("/:id/reset-key",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(access, "credential", "reset"),
			handler.ResetSecurityKey,
		)
	}
}
