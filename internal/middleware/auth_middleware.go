package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mattForge/OzoneForgePlanner/internal/domain"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/contextutil"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/response"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/token"
	"github.com/mattForge/OzoneForgePlanner/internal/tenant"
)

// AuthMiddleware authenticates the request from a Bearer session token
// and stores the caller's identity on the gin context. Rotation and
// refresh tokens are rejected here, they have dedicated endpoints.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := token.Parse(raw)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		if claims.Purpose != token.PurposeSession {
			response.FromError(c, token.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("org_ids", claims.OrgIDs)

		ctx := contextutil.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ActiveOrg resolves the caller's active organization for this request.
// The X-Active-Org header selects among the caller's organizations and
// defaults to the first one. Super users may address any organization.
func ActiveOrg() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		orgIDs, _ := c.Get("org_ids")
		memberOf, _ := orgIDs.([]string)

		requested := c.GetHeader("X-Active-Org")

		if role == string(domain.RoleSuperUser) {
			if requested == "" {
				response.FromError(c, apperror.InvalidField("X-Active-Org"))
				c.Abort()
				return
			}
			c.Set("org_id", requested)
			c.Request = c.Request.WithContext(contextutil.WithOrgID(c.Request.Context(), requested))
			c.Next()
			return
		}

		if len(memberOf) == 0 {
			response.FromError(c, apperror.ErrForbidden)
			c.Abort()
			return
		}

		active := memberOf[0]
		if requested != "" {
			if !tenant.MemberOf(memberOf, requested) {
				response.FromError(c, apperror.ErrForbidden)
				c.Abort()
				return
			}
			active = requested
		}

		c.Set("org_id", active)
		c.Request = c.Request.WithContext(contextutil.WithOrgID(c.Request.Context(), active))
		c.Next()
	}
}
