package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/tierforum/internal/common"
	"github.com/dmitrijs2005/tierforum/internal/dbx"
	"github.com/dmitrijs2005/tierforum/internal/logging"
	"github.com/dmitrijs2005/tierforum/internal/server/auth"
	"github.com/dmitrijs2005/tierforum/internal/server/gate"
	"github.com/dmitrijs2005/tierforum/internal/server/models"
	"github.com/dmitrijs2005/tierforum/internal/server/repositories/answers"
	"github.com/dmitrijs2005/tierforum/internal/server/repositories/questions"
	"github.com/dmitrijs2005/tierforum/internal/server/repositories/users"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memStore is an in-memory stand-in for the postgres repositories.
type memStore struct {
	mu        sync.Mutex
	users     map[string]*models.User
	questions map[string]*models.Question
	answers   map[string]*models.Answer
	err       error
	seq       int

	ownerLookups int
	mutations    int
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[string]*models.User{},
		questions: map[string]*models.Question{},
		answers:   map[string]*models.Answer{},
	}
}

func (m *memStore) tick() time.Time {
	m.seq++
	return time.Date(2025, 1, 1, 0, 0, m.seq, 0, time.UTC)
}

type fakeManager struct{ store *memStore }

func (f fakeManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (f fakeManager) Users(db dbx.DBTX) users.Repository                  { return fakeUsers{f.store} }
func (f fakeManager) Questions(db dbx.DBTX) questions.Repository          { return fakeQuestions{f.store} }
func (f fakeManager) Answers(db dbx.DBTX) answers.Repository              { return fakeAnswers{f.store} }

type fakeUsers struct{ m *memStore }

func (r fakeUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.err != nil {
		return nil, r.m.err
	}
	if _, ok := r.m.users[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u.ID = uuid.NewString()
	u.CreatedAt = r.m.tick()
	cp := *u
	r.m.users[u.Email] = &cp
	return u, nil
}

func (r fakeUsers) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.err != nil {
		return nil, r.m.err
	}
	u, ok := r.m.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeQuestions struct{ m *memStore }

func (r fakeQuestions) Create(ctx context.Context, q *models.Question) (*models.Question, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.err != nil {
		return nil, r.m.err
	}
	r.m.mutations++
	q.ID = uuid.NewString()
	q.CreatedAt = r.m.tick()
	q.UpdatedAt = q.CreatedAt
	cp := *q
	r.m.questions[q.ID] = &cp
	return q, nil
}

func (r fakeQuestions) GetByID(ctx context.Context, id string) (*models.Question, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.err != nil {
		return nil, r.m.err
	}
	q, ok := r.m.questions[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *q
	return &cp, nil
}

func (r fakeQuestions) List(ctx context.Context) ([]models.Question, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.err != nil {
		return nil, r.m.err
	}
	out := make([]models.Question, 0, len(r.m.questions))
	for _, q := range r.m.questions {
		out = append(out, *q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r fakeQuestions) Update(ctx context.Context, id, title, body string) (*models.Question, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.err != nil {
		return nil, r.m.err
	}
	q, ok := r.m.questions[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	r.m.mutations++
	if title != "" {
		q.Title = title
	}
	if body != "" {
		q.Body = body
	}
	q.UpdatedAt = r.m.tick()
	cp := *q
	return &cp, nil
}

func (r fakeQuestions) Delete(ctx context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.err != nil {
		return r.m.err
	}
	if _, ok := r.m.questions[id]; !ok {
		return common.ErrorNotFound
	}
	r.m.mutations++
	delete(r.m.questions, id)
	for aid, a := range r.m.answers {
		if a.QuestionID == id {
			delete(r.m.answers, aid)
		}
	}
	return nil
}

func (r fakeQuestions) FindOwner(ctx context.Context, id string) (string, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.ownerLookups++
	if r.m.err != nil {
		return "", r.m.err
	}
	q, ok := r.m.questions[id]
	if !ok {
		return "", common.ErrorNotFound
	}
	return q.UserID, nil
}

type fakeAnswers struct{ m *memStore }

func (r fakeAnswers) Create(ctx context.Context, a *models.Answer) (*models.Answer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.err != nil {
		return nil, r.m.err
	}
	if _, ok := r.m.questions[a.QuestionID]; !ok {
		return nil, common.ErrorNotFound
	}
	r.m.mutations++
	a.ID = uuid.NewString()
	a.CreatedAt = r.m.tick()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	r.m.answers[a.ID] = &cp
	return a, nil
}

func (r fakeAnswers) ListByQuestion(ctx context.Context, questionID string) ([]models.Answer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.err != nil {
		return nil, r.m.err
	}
	out := make([]models.Answer, 0)
	for _, a := range r.m.answers {
		if a.QuestionID == questionID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r fakeAnswers) Update(ctx context.Context, id, body string) (*models.Answer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.err != nil {
		return nil, r.m.err
	}
	a, ok := r.m.answers[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	r.m.mutations++
	a.Body = body
	a.UpdatedAt = r.m.tick()
	cp := *a
	return &cp, nil
}

func (r fakeAnswers) Delete(ctx context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.err != nil {
		return r.m.err
	}
	if _, ok := r.m.answers[id]; !ok {
		return common.ErrorNotFound
	}
	r.m.mutations++
	delete(r.m.answers, id)
	return nil
}

func (r fakeAnswers) FindOwner(ctx context.Context, id string) (string, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.ownerLookups++
	if r.m.err != nil {
		return "", r.m.err
	}
	a, ok := r.m.answers[id]
	if !ok {
		return "", common.ErrorNotFound
	}
	return a.UserID, nil
}

// env wires the services over memStore with a real token service and gate.
type env struct {
	store     *memStore
	tokens    *auth.TokenService
	gate      *gate.Gate
	questions *QuestionService
	answers   *AnswerService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	tokens, err := auth.NewTokenService([]byte("services-secret"), time.Hour)
	require.NoError(t, err)

	store := newMemStore()
	m := fakeManager{store}
	g := gate.New(tokens, NewOwnerResolver(nil, m), logging.Nop{})

	return &env{
		store:     store,
		tokens:    tokens,
		gate:      g,
		questions: NewQuestionService(nil, m, g, logging.Nop{}),
		answers:   NewAnswerService(nil, m, g, logging.Nop{}),
	}
}

func (e *env) header(t *testing.T, userID string, tier auth.Tier) string {
	t.Helper()
	tok, err := e.tokens.Issue(auth.Claim{UserID: userID, Email: "u@example.com", DisplayName: "User " + userID[:4], Tier: tier})
	require.NoError(t, err)
	return "Bearer " + tok
}

func newHasher() *auth.PasswordHasher {
	return auth.NewPasswordHasher(bcrypt.MinCost)
}
