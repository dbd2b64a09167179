// Package questions stores forum questions.
package questions

import (
	"context"

	"github.com/dmitrijs2005/tierforum/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, q *models.Question) (*models.Question, error)
	GetByID(ctx context.Context, id string) (*models.Question, error)
	List(ctx context.Context) ([]models.Question, error)
	Update(ctx context.Context, id, title, body string) (*models.Question, error)
	Delete(ctx context.Context, id string) error
	// FindOwner returns the author id, "" for an orphaned question, or
	// common.ErrorNotFound.
	FindOwner(ctx context.Context, id string) (string, error)
}
