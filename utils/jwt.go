// utils/jwt.go
package utils

import (
	"errors"
	"time"

	"github.com/Jiromtrf/step4-app-backend-test/config"
	"github.com/golang-jwt/jwt/v5"
)

// Access tokens expire after 60 minutes.
const AccessTokenTTL = 60 * time.Minute

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed HS256 bearer token whose subject is the
// user id.
func GenerateToken(userID, name string, cfg *config.Config) (string, error) {
	claims := Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken validates signature and expiry and returns the claims. Any
// failure, including a non-HMAC signing method, comes back as ErrInvalidToken.
func ParseToken(tokenString string, cfg *config.Config) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
