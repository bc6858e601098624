package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	// federationEndpoint is the AWS console federation endpoint.
	federationEndpoint = "https://signin.aws.amazon.com/federation"

	// consoleDestination is where the login URL lands the browser.
	consoleDestination = "https://console.aws.amazon.com"

	consoleIssuer = "aws-auth-service"
)

// Bridge exchanges stored identity assertions for temporary AWS
// credentials and derives one-time console login URLs from them.
type Bridge struct {
	sts           STSClient
	httpClient    *http.Client
	roleARN       string
	federationURL string
}

func NewBridge(stsClient STSClient, roleARN string) *Bridge {
	return &Bridge{
		sts:           stsClient,
		httpClient:    &http.Client{Timeout: requestTimeout},
		roleARN:       roleARN,
		federationURL: federationEndpoint,
	}
}

// ConsoleLoginURL packages the temporary credentials into a federation
// signin-token request and builds a time-limited console login URL.
func (b *Bridge) ConsoleLoginURL(ctx context.Context, creds *Credentials) (string, error) {
	sessionJSON, err := json.Marshal(map[string]string{
		"sessionId":    creds.AccessKeyID,
		"sessionKey":   creds.SecretAccessKey,
		"sessionToken": creds.SessionToken,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal session: %v", ErrSigninTokenRequest, err)
	}

	signinToken, err := b.getSigninToken(ctx, sessionJSON)
	if err != nil {
		return "", err
	}

	loginURL := fmt.Sprintf("%s?Action=login&Issuer=%s&Destination=%s&SigninToken=%s",
		b.federationURL,
		url.QueryEscape(consoleIssuer),
		url.QueryEscape(consoleDestination),
		url.QueryEscape(signinToken),
	)
	return loginURL, nil
}

func (b *Bridge) getSigninToken(ctx context.Context, sessionJSON []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	query := url.Values{
		"Action":  {"getSigninToken"},
		"Session": {string(sessionJSON)},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		b.federationURL+"?"+query.Encode(),
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrSigninTokenRequest, err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigninTokenRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: federation endpoint returned status %d", ErrSigninTokenRequest, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrSigninTokenRequest, err)
	}

	var parsed struct {
		SigninToken string `json:"SigninToken"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrSigninTokenRequest, err)
	}
	if parsed.SigninToken == "" {
		return "", fmt.Errorf("%w: response missing SigninToken", ErrSigninTokenRequest)
	}

	return parsed.SigninToken, nil
}
