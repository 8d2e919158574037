package credential

import (
	"math/rand/v2"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

const (
	otpMin  = 100000
	otpSpan = 900000
)

// GenerateOTP returns a 6-digit one-time key drawn uniformly from
// [100000, 999999]. The caller is responsible for surfacing it exactly
// once; only its hash is ever stored.
func GenerateOTP() string {
	return strconv.Itoa(otpMin + rand.IntN(otpSpan))
}

// Hash derives the stored form of a secret.
func Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare checks a candidate secret against a stored hash.
func Compare(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
