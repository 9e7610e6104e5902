package auth

import (
	"fmt"
	"strings"
)

const bearerScheme = "Bearer"

// Principal is the identity resolved from a verified token.
type Principal struct {
	Username string `json:"username"`
}

// Guard resolves the caller of a protected operation from its bearer token.
//
// The guard never consults the database: a correctly signed, unexpired token
// is sufficient proof of identity until it expires. Issued tokens therefore
// cannot be revoked early.
type Guard struct {
	codec *TokenCodec
}

// NewGuard creates a guard verifying tokens with codec.
func NewGuard(codec *TokenCodec) *Guard {
	return &Guard{codec: codec}
}

// Authenticate extracts the token from an Authorization header value of the
// form "Bearer <token>" and verifies it. Rejections match ErrUnauthorized
// together with ErrMissingToken or ErrInvalidToken.
func (g *Guard) Authenticate(authorization string) (Principal, error) {
	token, ok := ExtractBearerToken(authorization)
	if !ok {
		return Principal{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrMissingToken)
	}
	return g.AuthenticateToken(token)
}

// AuthenticateToken verifies a raw token, e.g. one passed as a query parameter.
func (g *Guard) AuthenticateToken(token string) (Principal, error) {
	if token == "" {
		return Principal{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrMissingToken)
	}

	subject, err := g.codec.Verify(token)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return Principal{Username: subject}, nil
}

// ExtractBearerToken returns the token of a "Bearer <token>" header value.
// The scheme is matched case-insensitively.
func ExtractBearerToken(authorization string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
