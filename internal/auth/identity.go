package auth

// Identity represents a normalized external authentication identity
// returned by an OAuth provider. It contains facts only, no decisions.
type Identity struct {
	Provider      string // e.g. "google"
	Subject       string // provider-scoped unique user identifier (sub)
	Email         string // verified email returned by provider
	Name          string // display name returned by provider
	EmailVerified bool   // whether provider asserts email ownership
}

// Grant bundles a verified identity with the provider credentials
// obtained during the code exchange. The IDToken doubles as the web
// identity assertion later presented to the cloud federation endpoint.
type Grant struct {
	Identity    Identity
	IDToken     string
	AccessToken string
}
