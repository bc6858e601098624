package aws

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

var (
	// ErrFederationExchange is returned when STS rejects the identity
	// assertion (expired token, wrong audience, trust policy mismatch)
	// or cannot be reached.
	ErrFederationExchange = errors.New("aws: federation exchange failed")

	// ErrSigninTokenRequest is returned when the console federation
	// endpoint fails to produce a signin token.
	ErrSigninTokenRequest = errors.New("aws: signin token request failed")
)

const (
	// roleSessionName identifies sessions opened by this service in
	// CloudTrail; any stable string works.
	roleSessionName = "aws-auth-service"

	// sessionDuration is the fixed lifetime of issued credentials.
	sessionDuration = time.Hour

	requestTimeout = 10 * time.Second
)

// Credentials are temporary, auto-expiring AWS credentials. They are
// sourced fresh from STS on every request and never persisted.
type Credentials struct {
	AccessKeyID     string    `json:"AccessKeyId"`
	SecretAccessKey string    `json:"SecretAccessKey"`
	SessionToken    string    `json:"SessionToken"`
	Expiration      time.Time `json:"Expiration"`
}

// STSClient is the slice of the STS API the bridge uses.
type STSClient interface {
	AssumeRoleWithWebIdentity(
		ctx context.Context,
		params *sts.AssumeRoleWithWebIdentityInput,
		optFns ...func(*sts.Options),
	) (*sts.AssumeRoleWithWebIdentityOutput, error)
}

// NewSTSClient builds a client suitable for web-identity federation.
// AssumeRoleWithWebIdentity is a public STS operation, so anonymous
// credentials are enough.
func NewSTSClient(region string) *sts.Client {
	return sts.New(sts.Options{
		Region:      region,
		Credentials: aws.AnonymousCredentials{},
	})
}

// AssumeWithIdentity exchanges the identity assertion for temporary
// scoped credentials under the configured role.
func (b *Bridge) AssumeWithIdentity(ctx context.Context, idToken string) (*Credentials, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	out, err := b.sts.AssumeRoleWithWebIdentity(ctx, &sts.AssumeRoleWithWebIdentityInput{
		RoleArn:          aws.String(b.roleARN),
		RoleSessionName:  aws.String(roleSessionName),
		WebIdentityToken: aws.String(idToken),
		DurationSeconds:  aws.Int32(int32(sessionDuration.Seconds())),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFederationExchange, err)
	}
	if out.Credentials == nil {
		return nil, fmt.Errorf("%w: STS returned no credentials", ErrFederationExchange)
	}

	return &Credentials{
		AccessKeyID:     aws.ToString(out.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(out.Credentials.SecretAccessKey),
		SessionToken:    aws.ToString(out.Credentials.SessionToken),
		Expiration:      aws.ToTime(out.Credentials.Expiration),
	}, nil
}
