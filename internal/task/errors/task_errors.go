package taskerrors

import (
	"net/http"

	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Task not found",
		http.StatusNotFound,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidState,
		"Unknown task status",
		http.StatusBadRequest,
	)

	ErrInvalidPriority = apperror.New(
		apperror.CodeInvalidState,
		"Unknown task priority",
		http.StatusBadRequest,
	)
)
