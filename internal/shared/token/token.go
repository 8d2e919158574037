package token

import (
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
)

// Purpose narrows what a token may be exchanged for. Session tokens
// reach the API, rotation tokens may only finalize a credential
// rotation, refresh tokens may only mint new session tokens.
const (
	PurposeSession  = "session"
	PurposeRotation = "rotation"
	PurposeRefresh  = "refresh"
)

const (
	SessionTTL  = 15 * time.Minute
	RotationTTL = 5 * time.Minute
	RefreshTTL  = 7 * 24 * time.Hour
)

var ErrInvalidToken = apperror.New(
	apperror.CodeUnauthorized,
	"Invalid or expired token",
	http.StatusUnauthorized,
)

type Claims struct {
	UserID  string   `json:"uid"`
	Role    string   `json:"role"`
	OrgIDs  []string `json:"org_ids,omitempty"`
	Purpose string   `json:"purpose"`
	jwt.RegisteredClaims
}

func secret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("insecure-dev-secret")
}

func Generate(userID, role string, orgIDs []string, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  userID,
		Role:    role,
		OrgIDs:  orgIDs,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(secret())
	if err != nil {
		return "", apperror.Wrap(err, apperror.CodeInternalError, "Failed to sign token", http.StatusInternalServerError)
	}
	return signed, nil
}

func Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret(), nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
