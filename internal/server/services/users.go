// Package services contains the forum's business operations. Every mutating
// operation asks the authorization gate first and touches storage only when
// the gate allows it.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/tierforum/internal/common"
	"github.com/dmitrijs2005/tierforum/internal/dbx"
	"github.com/dmitrijs2005/tierforum/internal/logging"
	"github.com/dmitrijs2005/tierforum/internal/server/auth"
	"github.com/dmitrijs2005/tierforum/internal/server/gate"
	"github.com/dmitrijs2005/tierforum/internal/server/models"
	"github.com/dmitrijs2005/tierforum/internal/server/repositories/repomanager"
)

// maxPasswordBytes is bcrypt's input limit.
const maxPasswordBytes = 72

// PasswordHasher is satisfied by *auth.PasswordHasher.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenIssuer is satisfied by *auth.TokenService.
type TokenIssuer interface {
	Issue(claim auth.Claim) (string, error)
}

// SignupInput is what a new user submits. Tier is coerced into range.
type SignupInput struct {
	Email       string
	Password    string
	DisplayName string
	Tier        int
}

// AuthResult is returned by signup and signin.
type AuthResult struct {
	User  *models.User
	Token string
}

// UserService handles signup, signin and identity lookups.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	tokens      TokenIssuer
	gate        *gate.Gate
	logger      logging.Logger

	dummyOnce   sync.Once
	dummyDigest string
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, h PasswordHasher, t TokenIssuer, g *gate.Gate, l logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      h,
		tokens:      t,
		gate:        g,
		logger:      l.With("module", "user_service"),
	}
}

// Signup creates an account and returns it with a fresh token.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.DisplayName)

	if email == "" || in.Password == "" || name == "" {
		return nil, invalid("Email, password, and display name are required")
	}
	if !strings.Contains(email, "@") {
		return nil, invalid("Email address is malformed")
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, invalid(fmt.Sprintf("Password must be at most %d bytes", maxPasswordBytes))
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, fmt.Errorf("signup: %w", errors.Join(common.ErrorInternal, err))
	}

	user := &models.User{
		Email:        email,
		PasswordHash: digest,
		DisplayName:  name,
		Tier:         auth.ClampTier(in.Tier),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			return common.ErrorAlreadyExists
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}

		user, err = repo.Create(ctx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, &ConflictError{Message: "User with this email already exists"}
		}
		s.logger.Error(ctx, "signup failed", "error", err)
		return nil, fmt.Errorf("signup: %w", err)
	}

	s.logger.Info(ctx, "user signed up", "user_id", user.ID, "tier", int(user.Tier))
	return s.issue(ctx, user)
}

// Signin verifies credentials. Unknown emails and wrong passwords produce the
// same error, and both run a bcrypt comparison.
func (s *UserService) Signin(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, invalid("Email and password are required")
	}

	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(password, s.dummy())
			return nil, common.ErrorInvalidCredentials
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, fmt.Errorf("signin: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	return s.issue(ctx, user)
}

// Me returns the identity carried by the presented token.
func (s *UserService) Me(ctx context.Context, rawHeader string) (auth.Claim, error) {
	d := s.gate.Identify(ctx, rawHeader)
	if err := d.Err(); err != nil {
		return auth.Claim{}, err
	}
	return d.Claim, nil
}

func (s *UserService) issue(ctx context.Context, user *models.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.Claim())
	if err != nil {
		s.logger.Error(ctx, "token issuing failed", "user_id", user.ID, "error", err)
		return nil, fmt.Errorf("issue token: %w", errors.Join(common.ErrorInternal, err))
	}
	return &AuthResult{User: user, Token: token}, nil
}

// dummy returns a digest used to equalize signin timing for unknown users.
func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		d, err := s.hasher.Hash("tierforum-dummy-password")
		if err == nil {
			s.dummyDigest = d
		}
	})
	return s.dummyDigest
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
