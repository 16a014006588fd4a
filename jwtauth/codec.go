package jwtauth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultTTL is the lifetime of an issued token
	DefaultTTL = 10 * time.Hour

	// MinKeyBytes is the minimum HS256 key size (256 bits)
	MinKeyBytes = 32
)

var (
	// ErrInvalidToken is returned when a token is malformed, forged, expired or has no subject
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned (together with ErrInvalidToken) when exp has passed
	ErrTokenExpired = errors.New("token expired")

	// ErrWeakKey is returned when the signing key is shorter than MinKeyBytes
	ErrWeakKey = errors.New("signing key must be at least 256 bits")

	// ErrEmptySubject is returned when issuing a token without a subject
	ErrEmptySubject = errors.New("subject must not be empty")
)

// Option configures a Codec
type Option func(*Codec)

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

// WithTTL overrides DefaultTTL
func WithTTL(ttl time.Duration) Option {
	return func(c *Codec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// Codec issues and checks HS256 tokens under a single process-wide key.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewCodec creates a codec signing with a copy of key
func NewCodec(key []byte, opts ...Option) (*Codec, error) {
	if len(key) < MinKeyBytes {
		return nil, fmt.Errorf("%w: got %d bytes", ErrWeakKey, len(key))
	}

	c := &Codec{
		key: append([]byte(nil), key...),
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewCodecFromBase64 decodes a standard base64 secret and creates a codec
func NewCodecFromBase64(secret string, opts ...Option) (*Codec, error) {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("decode signing key: %w", err)
	}
	return NewCodec(key, opts...)
}

// TTL returns the lifetime given to issued tokens
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for subject with iat = now and exp = now + TTL
func (c *Codec) Issue(subject string) (string, error) {
	return c.IssueWithClaims(subject, nil)
}

// IssueWithClaims signs a token carrying extra claims. sub, iat and exp
// always come from the codec and override entries in extra.
func (c *Codec) IssueWithClaims(subject string, extra map[string]interface{}) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}

	now := c.now()
	claims := make(jwt.MapClaims, len(extra)+3)
	for k, v := range extra {
		claims[k] = v
	}
	claims["sub"] = subject
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(c.ttl))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseSubject verifies the signature and expiry and returns the subject.
// Every failure matches ErrInvalidToken; expired tokens also match ErrTokenExpired.
func (c *Codec) ParseSubject(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %w", ErrInvalidToken, ErrTokenExpired)
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}

// IsExpired reports whether exp is at or before now. The signature is
// verified first; a token that cannot be verified is reported as expired.
func (c *Codec) IsExpired(token string) bool {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || claims.ExpiresAt == nil {
		return true
	}
	return !c.now().Before(claims.ExpiresAt.Time)
}

// Validate reports whether token is authentic, unexpired and issued to expectedSubject.
// Subjects are compared exactly.
func (c *Codec) Validate(token, expectedSubject string) bool {
	subject, err := c.ParseSubject(token)
	if err != nil {
		return false
	}
	return subject == expectedSubject && !c.IsExpired(token)
}

func (c *Codec) keyFunc(*jwt.Token) (interface{}, error) {
	return c.key, nil
}
