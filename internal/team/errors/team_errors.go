package teamerrors

import (
	"net/http"

	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
)

var ErrTeamNotFound = apperror.New(
	apperror.CodeNotFound,
	"Team not found",
	http.StatusNotFound,
)
