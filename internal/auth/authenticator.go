package auth

import (
	"context"
	"fmt"
)

// TokenTypeBearer is the token_type returned with every access token.
const TokenTypeBearer = "bearer"

// Credential is the stored login record of a seller.
type Credential struct {
	Username     string
	PasswordHash string
}

// CredentialStore looks up credentials by exact username. Implementations
// return a nil credential and a nil error when the username is unknown.
type CredentialStore interface {
	FindCredentialByUsername(ctx context.Context, username string) (*Credential, error)
}

// Token is the result of a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Authenticator exchanges a username and password for an access token.
type Authenticator struct {
	store  CredentialStore
	hasher PasswordHasher
	codec  *TokenCodec
}

// NewAuthenticator wires an authenticator from its collaborators.
func NewAuthenticator(store CredentialStore, hasher PasswordHasher, codec *TokenCodec) *Authenticator {
	return &Authenticator{
		store:  store,
		hasher: hasher,
		codec:  codec,
	}
}

// Login verifies the password of username and issues a token whose subject is
// that username. Lookup is case-sensitive.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*Token, error) {
	cred, err := a.store.FindCredentialByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up credential: %w", err)
	}
	if cred == nil {
		return nil, ErrUserNotFound
	}

	if !a.hasher.Verify(password, cred.PasswordHash) {
		return nil, ErrInvalidPassword
	}

	accessToken, err := a.codec.IssueDefault(cred.Username)
	if err != nil {
		return nil, err
	}

	return &Token{
		AccessToken: accessToken,
		TokenType:   TokenTypeBearer,
	}, nil
}
