// Package auth issues and validates the signed, time-limited access tokens
// handed out at login.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wordsearch/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL applies when neither the config nor the caller picks one.
const DefaultTokenTTL = 30 * time.Minute

// TokenConfig is fixed for the life of a TokenService.
type TokenConfig struct {
	SecretKey  []byte
	Method     *jwt.SigningMethodHMAC
	DefaultTTL time.Duration
}

// TokenService signs tokens carrying {sub, exp} and validates them again.
// There is no revocation list: a token is valid until it expires.
type TokenService struct {
	secret     []byte
	method     *jwt.SigningMethodHMAC
	defaultTTL time.Duration
	now        func() time.Time
}

type Option func(*TokenService)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) { s.now = now }
}

func NewTokenService(cfg TokenConfig, opts ...Option) *TokenService {
	s := &TokenService{
		secret:     append([]byte(nil), cfg.SecretKey...),
		method:     cfg.Method,
		defaultTTL: cfg.DefaultTTL,
		now:        func() time.Time { return time.Now().UTC() },
	}
	if s.method == nil {
		s.method = jwt.SigningMethodHS256
	}
	if s.defaultTTL <= 0 {
		s.defaultTTL = DefaultTokenTTL
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Issue signs a token for subject that expires after ttl. A non-positive ttl
// selects the configured default.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	token := jwt.NewWithClaims(s.method, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(s.now().Add(ttl)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Validate returns the token subject. Every rejection (bad signature, wrong
// algorithm, malformed input, missing or passed exp, empty subject) is
// reported as common.ErrInvalidToken with the reason wrapped alongside.
func (s *TokenService) Validate(tokenString string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	claims := &jwt.RegisteredClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", errors.Join(common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
