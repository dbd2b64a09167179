package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tierforum/internal/common"
	"github.com/dmitrijs2005/tierforum/internal/logging"
	"github.com/dmitrijs2005/tierforum/internal/server/auth"
	"github.com/dmitrijs2005/tierforum/internal/server/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	svc   *UserService
	mock  sqlmock.Sqlmock
	store *memStore
	e     *env
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	e := newEnv(t)
	m := fakeManager{e.store}
	svc := NewUserService(db, m, newHasher(), e.tokens, e.gate, logging.Nop{})

	return &userFixture{svc: svc, mock: mock, store: e.store, e: e}
}

func TestUserService_Signup(t *testing.T) {
	f := newUserFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	res, err := f.svc.Signup(context.Background(), SignupInput{
		Email:       "  Alice@Example.COM ",
		Password:    "secret",
		DisplayName: " Alice ",
		Tier:        2,
	})
	require.NoError(t, err)
	require.NoError(t, f.mock.ExpectationsWereMet())

	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.Equal(t, "Alice", res.User.DisplayName)
	assert.Equal(t, auth.TierAdvisor, res.User.Tier)
	assert.NotEqual(t, "secret", res.User.PasswordHash)

	claim, ok := f.e.tokens.Verify(res.Token)
	require.True(t, ok)
	assert.Equal(t, res.User.ID, claim.UserID)
	assert.Equal(t, auth.TierAdvisor, claim.Tier)
}

func TestUserService_SignupClampsTier(t *testing.T) {
	tests := []struct {
		requested int
		want      auth.Tier
	}{
		{0, auth.TierQuestioner},
		{-4, auth.TierQuestioner},
		{3, auth.TierAdmin},
		{99, auth.TierAdmin},
	}

	for _, tt := range tests {
		f := newUserFixture(t)
		f.mock.ExpectBegin()
		f.mock.ExpectCommit()

		res, err := f.svc.Signup(context.Background(), SignupInput{
			Email: "a@example.com", Password: "pw", DisplayName: "A", Tier: tt.requested,
		})
		require.NoError(t, err)
		assert.Equal(t, tt.want, res.User.Tier, "requested %d", tt.requested)

		claim, ok := f.e.tokens.Verify(res.Token)
		require.True(t, ok)
		assert.Equal(t, tt.want, claim.Tier)
	}
}

func TestUserService_SignupDuplicateEmail(t *testing.T) {
	f := newUserFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	in := SignupInput{Email: "dup@example.com", Password: "pw", DisplayName: "Dup"}
	_, err := f.svc.Signup(context.Background(), in)
	require.NoError(t, err)

	in.Email = "DUP@example.com"
	_, err = f.svc.Signup(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Contains(t, err.Error(), "User with this email already exists")
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestUserService_SignupValidation(t *testing.T) {
	tests := []struct {
		name string
		in   SignupInput
	}{
		{"missing email", SignupInput{Password: "pw", DisplayName: "A"}},
		{"missing password", SignupInput{Email: "a@example.com", DisplayName: "A"}},
		{"blank display name", SignupInput{Email: "a@example.com", Password: "pw", DisplayName: "  "}},
		{"malformed email", SignupInput{Email: "alice", Password: "pw", DisplayName: "A"}},
		{"password too long", SignupInput{Email: "a@example.com", Password: strings.Repeat("x", 73), DisplayName: "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)
			_, err := f.svc.Signup(context.Background(), tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrorValidation)
			require.NoError(t, f.mock.ExpectationsWereMet())
		})
	}
}

func TestUserService_SignupStorageFailure(t *testing.T) {
	f := newUserFixture(t)
	f.store.err = errors.New("connection reset")
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Signup(context.Background(), SignupInput{Email: "a@example.com", Password: "pw", DisplayName: "A"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorAlreadyExists)
	assert.NotErrorIs(t, err, common.ErrorValidation)
}

func TestUserService_Signin(t *testing.T) {
	f := newUserFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	_, err := f.svc.Signup(context.Background(), SignupInput{Email: "bob@example.com", Password: "hunter2", DisplayName: "Bob", Tier: 3})
	require.NoError(t, err)

	res, err := f.svc.Signin(context.Background(), " BOB@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Bob", res.User.DisplayName)

	claim, ok := f.e.tokens.Verify(res.Token)
	require.True(t, ok)
	assert.Equal(t, auth.TierAdmin, claim.Tier)
	assert.Equal(t, "bob@example.com", claim.Email)
}

func TestUserService_SigninFailuresLookTheSame(t *testing.T) {
	f := newUserFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	_, err := f.svc.Signup(context.Background(), SignupInput{Email: "bob@example.com", Password: "hunter2", DisplayName: "Bob"})
	require.NoError(t, err)

	_, wrongPassword := f.svc.Signin(context.Background(), "bob@example.com", "hunter3")
	_, unknownUser := f.svc.Signin(context.Background(), "carol@example.com", "hunter2")

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.ErrorIs(t, wrongPassword, common.ErrorInvalidCredentials)
	assert.ErrorIs(t, unknownUser, common.ErrorInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	assert.NotEmpty(t, f.svc.dummyDigest)
}

func TestUserService_SigninRequiresFields(t *testing.T) {
	f := newUserFixture(t)
	_, err := f.svc.Signin(context.Background(), "", "pw")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestUserService_Me(t *testing.T) {
	f := newUserFixture(t)

	claim, err := f.svc.Me(context.Background(), f.e.header(t, "8f14e45f-ceea-467f-a0e6-000000000001", auth.TierAdvisor))
	require.NoError(t, err)
	assert.Equal(t, auth.TierAdvisor, claim.Tier)

	_, err = f.svc.Me(context.Background(), "Bearer nonsense")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorUnauthenticated)
	assert.EqualError(t, err, gate.UnauthenticatedMessage)
}
