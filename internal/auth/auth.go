package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Config carries the session-token settings loaded once at startup. It is
// read-only after construction and shared by every request without locking.
type Config struct {
	Secret     string
	Issuer     string
	CookieName string
	TokenTTL   time.Duration
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Secret) == "" {
		return errors.New("auth: secret is required")
	}
	if strings.TrimSpace(c.Issuer) == "" {
		return errors.New("auth: issuer is required")
	}
	if strings.TrimSpace(c.CookieName) == "" {
		return errors.New("auth: cookie name is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("auth: token ttl must be greater than zero")
	}
	return nil
}

// Claims are the fields embedded in a session token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens using HS256.
type Codec struct {
	secret     []byte
	issuer     string
	cookieName string
	ttl        time.Duration
	now        func() time.Time
}

// CodecOption configures Codec behavior.
type CodecOption func(*Codec)

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) CodecOption {
	return func(c *Codec) {
		if fn != nil {
			c.now = fn
		}
	}
}

// NewCodec constructs a Codec from the startup configuration.
func NewCodec(cfg Config, opts ...CodecOption) (*Codec, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	c := &Codec{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		cookieName: cfg.CookieName,
		ttl:        cfg.TokenTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CookieName returns the name of the session cookie the codec reads.
func (c *Codec) CookieName() string { return c.cookieName }

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue signs a session token for the given subject and role. The returned
// time is the embedded expiry.
func (c *Codec) Issue(subject, role string) (string, time.Time, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", time.Time{}, errors.New("auth: subject is required")
	}
	now := c.now().UTC()
	expiresAt := now.Add(c.ttl)
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify checks the token signature, issuer and expiry, in that order, and
// returns the embedded claims untouched. Issuer comparison is exact and
// case-sensitive: a token validly signed under a different issuer is still
// rejected, so tokens minted for one deployment cannot be replayed against
// another sharing the signing secret.
func (c *Codec) Verify(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrBadSignature
	}
	parsed, err := jwt.ParseWithClaims(token, &Claims{},
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// Issuer and expiry are classified below so each failure maps to
		// its own sentinel error.
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, ErrBadSignature
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrBadSignature
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrBadSignature
	}
	if claims.Issuer != c.issuer {
		return nil, ErrIssuerMismatch
	}
	if claims.ExpiresAt == nil || !c.now().Before(claims.ExpiresAt.Time) {
		return nil, ErrExpired
	}
	return claims, nil
}

// Authenticate is the single authentication gate: it locates the session
// cookie in the raw Cookie header, verifies the carried token and derives
// the request principal. Codec failures propagate unchanged.
func (c *Codec) Authenticate(cookieHeader string) (Principal, error) {
	raw, ok := CookieValue(cookieHeader, c.cookieName)
	if !ok {
		return Principal{}, ErrMissingCredential
	}
	claims, err := c.Verify(raw)
	if err != nil {
		return Principal{}, err
	}
	return Principal{Subject: claims.Subject, Role: claims.Role}, nil
}
