package provider

import (
	"context"
	"errors"

	"aws-auth-service/internal/auth"
)

var (
	// ErrCodeExchangeFailed is returned when the authorization code
	// could not be traded for provider tokens.
	ErrCodeExchangeFailed = errors.New("provider: code exchange failed")

	// ErrIdentityInvalid is returned when the provider's identity
	// assertion fails signature, issuer, or audience verification, or
	// is missing required claims. No session may be created from it.
	ErrIdentityInvalid = errors.New("provider: identity assertion not valid")
)

// OAuthProvider defines the contract the external identity provider
// must implement. Implementations return identity facts only and must
// not perform session management.
type OAuthProvider interface {
	// Name returns the provider identifier (e.g. "google").
	Name() string

	// AuthCodeURL returns the OAuth authorization URL. State and PKCE
	// parameters are provided by the caller.
	AuthCodeURL(state string, codeChallenge string) string

	// ExchangeCode exchanges the authorization code for provider
	// credentials, verifies the returned identity assertion, and
	// returns the verified grant. An assertion that fails verification
	// must never yield a grant.
	ExchangeCode(
		ctx context.Context,
		code string,
		codeVerifier string,
	) (*auth.Grant, error)

	// RevokeToken asks the provider to revoke the given access token.
	RevokeToken(ctx context.Context, accessToken string) error
}
