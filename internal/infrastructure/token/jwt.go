package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL applies when Issue is called without an explicit ttl. It is
// intentionally distinct from the login endpoint's own token lifetime.
const DefaultTTL = 15 * time.Minute

var ErrInvalidToken = errors.New("invalid token")

// Service issues and verifies HS256 bearer tokens. The signing key is
// static process configuration; rotating it invalidates every outstanding
// token. There is no revocation list.
type Service struct {
	secretKey  []byte
	defaultTTL time.Duration
}

func NewService(secretKey string, defaultTTL time.Duration) *Service {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Service{
		secretKey:  []byte(secretKey),
		defaultTTL: defaultTTL,
	}
}

// Issue signs a token naming subject, expiring ttl from now. A zero ttl
// falls back to the service default; a negative ttl is honored as given
// and produces an already-expired token.
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secretKey)
}

// Verify validates the signature and expiry and returns the subject claim.
// Every failure mode collapses into ErrInvalidToken.
func (s *Service) Verify(tokenString string) (string, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || !tok.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
