package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tierforum/internal/common"
	"github.com/dmitrijs2005/tierforum/internal/logging"
	"github.com/dmitrijs2005/tierforum/internal/server/gate"
	"github.com/dmitrijs2005/tierforum/internal/server/models"
	"github.com/dmitrijs2005/tierforum/internal/server/policy"
	"github.com/dmitrijs2005/tierforum/internal/server/repositories/repomanager"
)

type QuestionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	gate        *gate.Gate
	logger      logging.Logger
}

func NewQuestionService(db *sql.DB, m repomanager.RepositoryManager, g *gate.Gate, l logging.Logger) *QuestionService {
	return &QuestionService{db: db, repomanager: m, gate: g, logger: l.With("module", "question_service")}
}

// List is public and returns questions newest first.
func (s *QuestionService) List(ctx context.Context) ([]models.Question, error) {
	items, err := s.repomanager.Questions(s.db).List(ctx)
	if err != nil {
		s.logger.Error(ctx, "list questions failed", "error", err)
		return nil, fmt.Errorf("list questions: %w", errors.Join(common.ErrorInternal, err))
	}
	return items, nil
}

// Get is public and returns the question with its answers in creation order.
func (s *QuestionService) Get(ctx context.Context, id string) (*models.Question, error) {
	if !validID(id) {
		return nil, notFound(gate.ResourceQuestion)
	}

	q, err := s.repomanager.Questions(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, s.storageError(ctx, "get question", err)
	}

	answers, err := s.repomanager.Answers(s.db).ListByQuestion(ctx, id)
	if err != nil {
		return nil, s.storageError(ctx, "list answers", err)
	}
	q.Answers = answers
	q.AnswerCount = len(answers)

	return q, nil
}

func (s *QuestionService) Create(ctx context.Context, rawHeader, title, body string) (*models.Question, error) {
	d, err := s.gate.Authorize(ctx, rawHeader, policy.ActionAsk, &gate.Target{Kind: gate.ResourceQuestion})
	if err != nil {
		return nil, err
	}
	if err := d.Err(); err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, invalid("Title is required")
	}

	q, err := s.repomanager.Questions(s.db).Create(ctx, &models.Question{
		Title:  title,
		Body:   strings.TrimSpace(body),
		UserID: d.Claim.UserID,
	})
	if err != nil {
		return nil, s.storageError(ctx, "create question", err)
	}

	q.Author = author(d)
	s.logger.Info(ctx, "question created", "question_id", q.ID, "user_id", d.Claim.UserID)
	return q, nil
}

// Update applies a partial edit. Empty title or body keep the stored values.
func (s *QuestionService) Update(ctx context.Context, rawHeader, id, title, body string) (*models.Question, error) {
	d, err := s.gate.Authorize(ctx, rawHeader, policy.ActionEdit, &gate.Target{Kind: gate.ResourceQuestion, ID: id})
	if err != nil {
		return nil, err
	}
	if err := d.Err(); err != nil {
		return nil, err
	}

	q, err := s.repomanager.Questions(s.db).Update(ctx, id, strings.TrimSpace(title), strings.TrimSpace(body))
	if err != nil {
		return nil, s.storageError(ctx, "update question", err)
	}

	s.logger.Info(ctx, "question updated", "question_id", id, "user_id", d.Claim.UserID)
	return q, nil
}

func (s *QuestionService) Delete(ctx context.Context, rawHeader, id string) error {
	d, err := s.gate.Authorize(ctx, rawHeader, policy.ActionDelete, &gate.Target{Kind: gate.ResourceQuestion, ID: id})
	if err != nil {
		return err
	}
	if err := d.Err(); err != nil {
		return err
	}

	if err := s.repomanager.Questions(s.db).Delete(ctx, id); err != nil {
		return s.storageError(ctx, "delete question", err)
	}

	s.logger.Info(ctx, "question deleted", "question_id", id, "user_id", d.Claim.UserID)
	return nil
}

func (s *QuestionService) storageError(ctx context.Context, op string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return notFound(gate.ResourceQuestion)
	}
	s.logger.Error(ctx, op+" failed", "error", err)
	return fmt.Errorf("%s: %w", op, errors.Join(common.ErrorInternal, err))
}

// author builds the public author projection from the caller's claim.
func author(d gate.Decision) *models.Author {
	return &models.Author{
		ID:          d.Claim.UserID,
		DisplayName: d.Claim.DisplayName,
		Tier:        d.Claim.Tier,
	}
}
