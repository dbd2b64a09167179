package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/tierforum/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenValidity is the lifetime of an access token unless configured
// otherwise.
const DefaultTokenValidity = 7 * 24 * time.Hour

// tokenClaims is the JWT payload. Field names are part of the wire format.
type tokenClaims struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Tier        int    `json:"tier"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 identity tokens signed with a single
// secret. It holds no mutable state and is safe for concurrent use.
type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
	parser   *jwt.Parser
}

type TokenOption func(*TokenService)

// WithClock overrides the time source used for both issuing and verifying.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService validates the signing configuration up front so a
// misconfigured secret fails at startup rather than per request.
func NewTokenService(secret []byte, validity time.Duration, opts ...TokenOption) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, common.ErrMisconfiguredSecret
	}
	if validity <= 0 {
		return nil, common.ErrInvalidTokenValidity
	}

	s := &TokenService{
		secret:   append([]byte(nil), secret...),
		validity: validity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)

	return s, nil
}

// Validity returns the configured token lifetime.
func (s *TokenService) Validity() time.Duration {
	return s.validity
}

// Issue signs claim into a token expiring Validity() from now.
func (s *TokenService) Issue(claim Claim) (string, error) {
	if !claim.Tier.Valid() {
		return "", fmt.Errorf("issue token: invalid tier %d", int(claim.Tier))
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID:      claim.UserID,
		Email:       claim.Email,
		DisplayName: claim.DisplayName,
		Tier:        int(claim.Tier),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claim.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, signing method and expiry and returns the embedded
// claim. Any failure yields false; callers treat that as anonymous.
func (s *TokenService) Verify(token string) (Claim, bool) {
	if token == "" {
		return Claim{}, false
	}

	tc := &tokenClaims{}
	parsed, err := s.parser.ParseWithClaims(token, tc, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claim{}, false
	}

	tier, ok := ParseTier(tc.Tier)
	if !ok || tc.UserID == "" {
		return Claim{}, false
	}

	return Claim{
		UserID:      tc.UserID,
		Email:       tc.Email,
		DisplayName: tc.DisplayName,
		Tier:        tier,
	}, true
}
