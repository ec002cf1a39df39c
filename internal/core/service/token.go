package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/freelancedash/profit-engine/internal/core/domain"
)

// TokenService issues and verifies HS256-signed session tokens binding a
// token to exactly one user id. The signing secret and TTL are explicit
// construction parameters, not ambient globals.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding userID with an expiry ttl from now.
func (s *TokenService) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify returns the user id embedded in token. Bad signature, wrong
// algorithm, malformed payload, and expiry all collapse to
// domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", domain.ErrInvalidToken
	}
	return userID, nil
}
