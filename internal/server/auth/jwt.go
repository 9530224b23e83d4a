// Package auth issues and validates the HS256 session tokens carried by
// admin RPCs.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rmoraesb/sentinela/internal/common"
)

// Claims carries the standard registered claims plus the admin account ID.
type Claims struct {
	jwt.RegisteredClaims
	AdminID string
}

// GenerateToken signs a new HS256 token for the given admin.
func GenerateToken(adminID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		AdminID: adminID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetAdminIDFromToken validates the token signature and expiry and returns
// the embedded admin ID. Expired tokens map to common.ErrTokenExpired so
// clients can distinguish "log in again" from "token garbage".
func GetAdminIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.AdminID, nil
}
