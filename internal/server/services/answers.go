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

type AnswerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	gate        *gate.Gate
	logger      logging.Logger
}

func NewAnswerService(db *sql.DB, m repomanager.RepositoryManager, g *gate.Gate, l logging.Logger) *AnswerService {
	return &AnswerService{db: db, repomanager: m, gate: g, logger: l.With("module", "answer_service")}
}

// Create answers questionID. The question's existence is checked only after
// the caller is known to be allowed to answer.
func (s *AnswerService) Create(ctx context.Context, rawHeader, questionID, body string) (*models.Answer, error) {
	d, err := s.gate.Authorize(ctx, rawHeader, policy.ActionAnswer, &gate.Target{Kind: gate.ResourceAnswer})
	if err != nil {
		return nil, err
	}
	if err := d.Err(); err != nil {
		return nil, err
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, invalid("Body is required")
	}

	if !validID(questionID) {
		return nil, notFound(gate.ResourceQuestion)
	}
	if _, err := s.repomanager.Questions(s.db).FindOwner(ctx, questionID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, notFound(gate.ResourceQuestion)
		}
		return nil, s.internal(ctx, "find question", err)
	}

	a, err := s.repomanager.Answers(s.db).Create(ctx, &models.Answer{
		QuestionID: questionID,
		Body:       body,
		UserID:     d.Claim.UserID,
	})
	if err != nil {
		// the question may have been deleted in the meantime
		if errors.Is(err, common.ErrorNotFound) {
			return nil, notFound(gate.ResourceQuestion)
		}
		return nil, s.internal(ctx, "create answer", err)
	}

	a.Author = author(d)
	s.logger.Info(ctx, "answer created", "answer_id", a.ID, "question_id", questionID, "user_id", d.Claim.UserID)
	return a, nil
}

func (s *AnswerService) Update(ctx context.Context, rawHeader, id, body string) (*models.Answer, error) {
	d, err := s.gate.Authorize(ctx, rawHeader, policy.ActionEdit, &gate.Target{Kind: gate.ResourceAnswer, ID: id})
	if err != nil {
		return nil, err
	}
	if err := d.Err(); err != nil {
		return nil, err
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, invalid("Body is required")
	}

	a, err := s.repomanager.Answers(s.db).Update(ctx, id, body)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, notFound(gate.ResourceAnswer)
		}
		return nil, s.internal(ctx, "update answer", err)
	}

	s.logger.Info(ctx, "answer updated", "answer_id", id, "user_id", d.Claim.UserID)
	return a, nil
}

func (s *AnswerService) Delete(ctx context.Context, rawHeader, id string) error {
	d, err := s.gate.Authorize(ctx, rawHeader, policy.ActionDelete, &gate.Target{Kind: gate.ResourceAnswer, ID: id})
	if err != nil {
		return err
	}
	if err := d.Err(); err != nil {
		return err
	}

	if err := s.repomanager.Answers(s.db).Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return notFound(gate.ResourceAnswer)
		}
		return s.internal(ctx, "delete answer", err)
	}

	s.logger.Info(ctx, "answer deleted", "answer_id", id, "user_id", d.Claim.UserID)
	return nil
}

func (s *AnswerService) internal(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, op+" failed", "error", err)
	return fmt.Errorf("%s: %w", op, errors.Join(common.ErrorInternal, err))
}
