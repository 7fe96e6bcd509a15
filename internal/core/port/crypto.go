package port

import "time"

// PasswordHasher hashes and verifies secrets using a slow, salted, adaptive
// one-way function. The cost factor is fixed at construction from
// configuration, not supplied per call.
type PasswordHasher interface {
	Hash(data string) (string, error)
	Compare(data, hash string) (bool, error)
}

// TokenClaims is the payload bound into a signed session token.
type TokenClaims struct {
	Username string
}

// TokenSigner signs and verifies session tokens. Sign embeds an expiry when
// expiresIn is positive; Verify fails on expired or tampered tokens.
type TokenSigner interface {
	Sign(claims TokenClaims, expiresIn time.Duration) (string, error)
	Verify(token string) (TokenClaims, error)
}

// IDGenerator produces opaque unique identifiers. No ordering guarantee.
type IDGenerator interface {
	Generate() string
}
