// Package auth provides password hashing and token primitives for the
// account subsystem: bcrypt password digests, HS256 JWT access tokens and
// random refresh tokens that are stored only as SHA-256 hashes.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt digest from a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the digest.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
