// Package collabauth is the HTTP collaborator's authentication layer
// (spec.md §6's "HTTP front end" external collaborator): bearer-token
// issuance/validation for the /v1/evaluate and /v1/stream endpoints.
//
// Spock's core has no resource or user model (§1: it is a pure
// three-stage pipeline over strings), so there is nothing for an
// RBAC/permission layer to apply to — unlike the teacher's
// internal/web/auth package, which additionally carries role-based access
// control and session cookies for its generated CRUD resources. This
// package keeps only what a stateless API-key collaborator needs: issue a
// signed bearer token for a hashed key, and validate one on each request.
// Adapted from internal/web/auth/{jwt.go,password.go}.
package collabauth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Issuer signs and validates bearer tokens for evaluate/stream requests.
type Issuer struct {
	secret string
	ttl    time.Duration
}

// NewIssuer returns an Issuer signing HS256 tokens with the given secret
// and lifetime.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, ttl: ttl}
}

// IssueToken returns a signed bearer token identifying keyID, the caller's
// API key identifier (not the key itself — the key is hashed at rest, see
// HashKey).
func (i *Issuer) IssueToken(keyID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"key_id": keyID,
		"iat":    now.Unix(),
		"exp":    now.Add(i.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(i.secret))
}

// ValidateToken verifies a bearer token's signature and expiry and
// returns the key ID it identifies. The signing method is checked
// explicitly to rule out algorithm-confusion attacks.
func (i *Issuer) ValidateToken(tokenString string) (keyID string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != "HS256" {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(i.secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	id, ok := claims["key_id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("token carries no key_id claim")
	}
	return id, nil
}

// HashKey hashes a plaintext API key for storage, rejecting inputs beyond
// bcrypt's 72-byte limit.
func HashKey(key string) (string, error) {
	if len(key) > 72 {
		return "", fmt.Errorf("API key exceeds maximum length of 72 bytes")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckKey reports whether a plaintext API key matches a stored hash.
func CheckKey(key, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
