package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is returned when an access token fails signature or
// claim validation. The HTTP layer maps it to 401.
var ErrTokenInvalid = errors.New("token is invalid")

// Claims are the JWT claims carried by access tokens.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies access tokens and mints refresh tokens.
// Access tokens are stateless HS256 JWTs; refresh tokens are opaque random
// values whose SHA-256 hashes are persisted for rotation and revocation.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenIssuer creates a token issuer with the given signing secret and
// lifetimes. The secret must not be empty.
func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, errs.NewValueIsInvalidError("token ttl")
	}

	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// RefreshTTL returns the configured refresh token lifetime.
func (ti *TokenIssuer) RefreshTTL() time.Duration {
	return ti.refreshTTL
}

// IssueAccessToken signs a JWT for the given user, valid from now for the
// configured access lifetime.
func (ti *TokenIssuer) IssueAccessToken(userID string, email string, now time.Time) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken verifies the signature and standard claims of an access
// token and returns its claims. Returns ErrTokenInvalid for any failure,
// including expiry.
func (ti *TokenIssuer) ParseAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ti.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// NewRefreshToken mints an opaque random refresh token.
// Returns the raw value for the client and the SHA-256 hash for storage.
func (ti *TokenIssuer) NewRefreshToken() (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	raw = hex.EncodeToString(buf)
	return raw, HashRefreshToken(raw), nil
}

// HashRefreshToken returns the hex-encoded SHA-256 hash of a raw refresh
// token, the only form that is ever persisted.
func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
