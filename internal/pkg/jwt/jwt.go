package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the lifetime of issued login tokens.
const DefaultTTL = 24 * time.Hour

var secret = []byte("inquiry-master-secret-change-me")

var errInvalidToken = errors.New("invalid token")

// SetSecret configures the signing secret. Empty input keeps the current
// secret, so the built-in default survives an unset config value.
func SetSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// Claims is the token payload. Role carries the admin claim checked by
// admin-gated routes.
type Claims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwtlib.RegisteredClaims
}

// Sign issues an HS256 token for the given user.
func Sign(userID uint, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(secret)
}

// Parse validates a token string and returns its claims.
func Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwtlib.ParseWithClaims(tokenStr, claims,
		func(*jwtlib.Token) (interface{}, error) { return secret, nil },
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}
