package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/tierforum/internal/logging"
	"github.com/dmitrijs2005/tierforum/internal/server/auth"
	"github.com/dmitrijs2005/tierforum/internal/server/gate"
	"github.com/dmitrijs2005/tierforum/internal/server/models"
	"github.com/dmitrijs2005/tierforum/internal/server/services"
)

const goodHeader = "Bearer good-token"

var testTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

var testClaim = auth.Claim{UserID: "u-1", Email: "alice@example.com", DisplayName: "Alice", Tier: auth.TierAdvisor}

func unauthenticated() error {
	return &gate.DeniedError{Kind: gate.DenialUnauthenticated, Message: gate.UnauthenticatedMessage}
}

type fakeUsers struct {
	signupIn  services.SignupInput
	signupErr error
	signinErr error
}

func (f *fakeUsers) Signup(ctx context.Context, in services.SignupInput) (*services.AuthResult, error) {
	f.signupIn = in
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return &services.AuthResult{
		User:  &models.User{ID: "u-1", Email: in.Email, DisplayName: in.DisplayName, Tier: auth.ClampTier(in.Tier)},
		Token: "issued-token",
	}, nil
}

func (f *fakeUsers) Signin(ctx context.Context, email, password string) (*services.AuthResult, error) {
	if f.signinErr != nil {
		return nil, f.signinErr
	}
	return &services.AuthResult{User: &models.User{ID: "u-1", Email: email, Tier: auth.TierAdmin}, Token: "signed-in"}, nil
}

func (f *fakeUsers) Me(ctx context.Context, rawHeader string) (auth.Claim, error) {
	if rawHeader != goodHeader {
		return auth.Claim{}, unauthenticated()
	}
	return testClaim, nil
}

type fakeQuestions struct {
	headers []string
	err     error
	items   []models.Question
}

func (f *fakeQuestions) List(ctx context.Context) ([]models.Question, error) {
	return f.items, f.err
}

func (f *fakeQuestions) Get(ctx context.Context, id string) (*models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Question{ID: id, Title: "t", Answers: []models.Answer{{ID: "a-1", QuestionID: id, Body: "b"}}}, nil
}

func (f *fakeQuestions) Create(ctx context.Context, rawHeader, title, body string) (*models.Question, error) {
	f.headers = append(f.headers, rawHeader)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Question{ID: "q-1", Title: title, Body: body, UserID: testClaim.UserID, CreatedAt: testTime,
		Author: &models.Author{ID: testClaim.UserID, DisplayName: testClaim.DisplayName, Tier: testClaim.Tier}}, nil
}

func (f *fakeQuestions) Update(ctx context.Context, rawHeader, id, title, body string) (*models.Question, error) {
	f.headers = append(f.headers, rawHeader)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Question{ID: id, Title: title, Body: body}, nil
}

func (f *fakeQuestions) Delete(ctx context.Context, rawHeader, id string) error {
	f.headers = append(f.headers, rawHeader)
	return f.err
}

type fakeAnswers struct {
	headers []string
	err     error
}

func (f *fakeAnswers) Create(ctx context.Context, rawHeader, questionID, body string) (*models.Answer, error) {
	f.headers = append(f.headers, rawHeader)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Answer{ID: "a-1", QuestionID: questionID, Body: body}, nil
}

func (f *fakeAnswers) Update(ctx context.Context, rawHeader, id, body string) (*models.Answer, error) {
	f.headers = append(f.headers, rawHeader)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Answer{ID: id, Body: body}, nil
}

func (f *fakeAnswers) Delete(ctx context.Context, rawHeader, id string) error {
	f.headers = append(f.headers, rawHeader)
	return f.err
}

func newTestServer(addr string) (*GRPCServer, *fakeUsers, *fakeQuestions, *fakeAnswers) {
	u, q, a := &fakeUsers{}, &fakeQuestions{}, &fakeAnswers{}
	return NewGRPCServer(addr, logging.Nop{}, u, q, a), u, q, a
}
