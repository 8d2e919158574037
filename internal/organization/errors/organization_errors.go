package organizationerrors

import (
	"net/http"

	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
)

var (
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)

	ErrOrganizationExists = apperror.New(
		apperror.CodeConflict,
		"Organization with the same id already exists",
		http.StatusConflict,
	)
)
