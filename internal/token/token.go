package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired is returned when the token signature is valid but its
	// expiry has elapsed.
	ErrExpired = errors.New("token: expired")

	// ErrInvalid is returned for any signature, format, or claim
	// failure other than expiry.
	ErrInvalid = errors.New("token: not valid")
)

// Claims is the payload carried in the session token cookie.
type Claims struct {
	Session string `json:"session"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	jwt.RegisteredClaims
}

// Codec issues and verifies the self-issued session tokens. It holds
// the process-wide signing secret; rotating the secret invalidates all
// outstanding tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs the claims with an expiry of now + ttl.
func (c *Codec) Issue(claims Claims) (string, error) {
	claims.ExpiresAt = jwt.NewNumericDate(c.now().Add(c.ttl))

	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify parses the token, checks the HS512 signature and expiry, and
// returns the decoded claims. It never returns claims on failure.
func (c *Codec) Verify(raw string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(
		raw,
		&claims,
		func(t *jwt.Token) (any, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalid
	}

	return claims, nil
}
