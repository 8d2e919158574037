package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/mattForge/OzoneForgePlanner/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, access middleware.AccessService) {
	att := r.Group("/attendance")
	att.Use(middleware.AuthMiddleware())
	att.Use(middleware.ActiveOrg())
	{
		att.GET("",
			middleware.Authorize(access, "attendance", "read"),
			handler.GetAll,
		)

		att.GET("/pulse",
			middleware.Authorize(access, "attendance", "read"),
			handler.Pulse,
		)
	}
}
