package client

import (
	"context"

	"github.com/dmitrijs2005/tierforum/internal/client/models"
)

type Client interface {
	Close() error
	Signup(ctx context.Context, email, password, displayName string, tier int) (*models.User, error)
	Signin(ctx context.Context, email, password string) (*models.User, error)
	SignOut()
	SignedIn() bool
	Me(ctx context.Context) (*models.User, error)
	ListQuestions(ctx context.Context) ([]models.Question, error)
	GetQuestion(ctx context.Context, id string) (*models.Question, error)
	CreateQuestion(ctx context.Context, title, body string) (*models.Question, error)
	UpdateQuestion(ctx context.Context, id, title, body string) (*models.Question, error)
	DeleteQuestion(ctx context.Context, id string) error
	CreateAnswer(ctx context.Context, questionID, body string) (*models.Answer, error)
	UpdateAnswer(ctx context.Context, id, body string) (*models.Answer, error)
	DeleteAnswer(ctx context.Context, id string) error
}
