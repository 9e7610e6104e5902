package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AlgorithmHS256 is the only signing algorithm the codec accepts.
	AlgorithmHS256 = "HS256"

	// DefaultTokenTTL is the lifetime of tokens issued at login.
	DefaultTokenTTL = 20 * time.Minute
)

// TokenCodec issues and verifies signed bearer tokens carrying a subject
// claim. It holds the process-wide signing key and is immutable after
// construction, so a single instance is shared by all requests.
type TokenCodec struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// TokenOption customizes a TokenCodec.
type TokenOption func(*TokenCodec)

// WithClock overrides the time source used for issuing and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(c *TokenCodec) {
		if now != nil {
			c.now = now
		}
	}
}

// NewTokenCodec creates a codec signing with secret. An empty algorithm means
// HS256. Any unusable setting is reported as ErrConfiguration; the secret
// itself is never part of the error.
func NewTokenCodec(secret, algorithm string, ttl time.Duration, opts ...TokenOption) (*TokenCodec, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: signing secret is not set", ErrConfiguration)
	}
	if algorithm == "" {
		algorithm = AlgorithmHS256
	}
	if algorithm != AlgorithmHS256 {
		return nil, fmt.Errorf("%w: unsupported signing algorithm %q", ErrConfiguration, algorithm)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("%w: token ttl must be positive, got %s", ErrConfiguration, ttl)
	}

	c := &TokenCodec{
		secret: []byte(secret),
		method: jwt.SigningMethodHS256,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)

	return c, nil
}

// TTL returns the configured token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for subject that expires ttl from now.
func (c *TokenCodec) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("token subject must not be empty")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(c.now().Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// IssueDefault signs a token for subject with the configured TTL.
func (c *TokenCodec) IssueDefault(subject string) (string, error) {
	return c.Issue(subject, c.ttl)
}

// Verify checks the token signature, then its expiry, then extracts the
// subject. Every failure is reported as ErrInvalidToken so callers cannot
// tell an expired token from a forged or malformed one.
func (c *TokenCodec) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := c.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// String keeps the signing key out of formatted output.
func (c *TokenCodec) String() string {
	return fmt.Sprintf("TokenCodec(alg=%s, ttl=%s)", c.method.Alg(), c.ttl)
}
