// Package answers stores answers to forum questions.
package answers

import (
	"context"

	"github.com/dmitrijs2005/tierforum/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, a *models.Answer) (*models.Answer, error)
	ListByQuestion(ctx context.Context, questionID string) ([]models.Answer, error)
	Update(ctx context.Context, id, body string) (*models.Answer, error)
	Delete(ctx context.Context, id string) error
	FindOwner(ctx context.Context, id string) (string, error)
}
