package interfaces

import (
	"context"

	"product-catalog/internal/auth"
)

// LoginService exchanges credentials for a bearer token
type LoginService interface {
	Login(ctx context.Context, username, password string) (*auth.Token, error)
}

// TokenGuard turns a bearer token into the caller's principal
type TokenGuard interface {
	Authenticate(authorizationHeader string) (auth.Principal, error)
	AuthenticateToken(token string) (auth.Principal, error)
}
