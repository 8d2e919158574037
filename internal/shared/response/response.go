package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
)

type ApiEnvelope struct {
	Ok    bool `json:"ok"`
	Data  any  `json:"data,omitempty"`
	Error any  `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// FromError maps an error to the envelope, falling back to a generic 500.
func FromError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperror.AppError); ok {
		Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}

	Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Internal server error", nil)
}
