package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mattForge/OzoneForgePlanner/internal/domain"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/response"
)

// AccessService answers whether a role may perform an action on a
// resource. Satisfied by the access package enforcer.
type AccessService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func Authorize(access AccessService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		allowed, err := access.Enforce(domain.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.FromError(c, apperror.Wrap(err, apperror.CodeInternalError, "Authorization check failed", 500))
			c.Abort()
			return
		}

		if !allowed {
			response.FromError(c, apperror.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
