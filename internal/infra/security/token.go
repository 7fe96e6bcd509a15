package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/micahgtan/to-do-list/internal/core/port"
)

// JWTSigner implements port.TokenSigner with HS256 and a single shared
// secret.
type JWTSigner struct {
	secret []byte
}

// NewJWTSigner constructs a signer for the supplied secret key.
func NewJWTSigner(secret string) *JWTSigner {
	return &JWTSigner{secret: []byte(secret)}
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Sign issues a token carrying the claims, with an expiry when expiresIn is
// positive.
func (s *JWTSigner) Sign(claims port.TokenClaims, expiresIn time.Duration) (string, error) {
	now := time.Now()
	registered := jwt.RegisteredClaims{
		IssuedAt: jwt.NewNumericDate(now),
	}
	if expiresIn > 0 {
		registered.ExpiresAt = jwt.NewNumericDate(now.Add(expiresIn))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Username:         claims.Username,
		RegisteredClaims: registered,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, rejecting expired or tampered
// tokens, and returns the embedded claims.
func (s *JWTSigner) Verify(token string) (port.TokenClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return port.TokenClaims{}, fmt.Errorf("verify token: %w", err)
	}

	return port.TokenClaims{Username: claims.Username}, nil
}
