package usererrors

import (
	"net/http"

	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User with the same email already exists",
		http.StatusConflict,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid work status",
		http.StatusBadRequest,
	)

	ErrMembershipScope = apperror.New(
		apperror.CodeForbidden,
		"Organization membership is managed at platform scope",
		http.StatusForbidden,
	)

	ErrNoOrganization = apperror.New(
		apperror.CodeInvalidState,
		"User has no organization membership",
		http.StatusUnprocessableEntity,
	)
)
