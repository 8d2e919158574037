package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/mattForge/OzoneForgePlanner/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login",
			middleware.RateLimitByUser(1, 5),
			handler.Login,
		)

		authGroup.POST("/rotate",
			middleware.RateLimitByUser(1, 5),
			handler.Rotate,
		)

		authGroup.POST("/refresh",
			middleware.RateLimitByUser(1, 5),
			handler.Refresh,
		)

		authGroup.GET("/me",
			middleware.AuthMiddleware(),
			handler.GetMe,
		)

		authGroup.POST("/logout",
			middleware.AuthMiddleware(),
			handler.Logout,
		)
	}
}
