package autherrors

import (
	"net/http"

	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials is deliberately identical for unknown email
	// and wrong password so login failures leak nothing.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeInvalidCredentials,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrRotationNotPending = apperror.New(
		apperror.CodeInvalidState,
		"No credential rotation is pending for this account",
		http.StatusConflict,
	)

	ErrWeakPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Password must be at least 8 characters",
		http.StatusBadRequest,
	)
)
