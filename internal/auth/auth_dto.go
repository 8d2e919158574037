package auth

import "github.com/mattForge/OzoneForgePlanner/internal/user"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is either a completed session or a rotation challenge.
// When RotationRequired is set only RotationToken is populated and the
// caller must finalize the rotation before any session is issued.
type LoginResponse struct {
	RotationRequired bool               `json:"rotation_required"`
	RotationToken    string             `json:"rotation_token,omitempty"`
	AccessToken      string             `json:"access_token,omitempty"`
	RefreshToken     string             `json:"refresh_token,omitempty"`
	User             *user.UserResponse `json:"user,omitempty"`
}

type RotateRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
