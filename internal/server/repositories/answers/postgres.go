package answers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tierforum/internal/common"
	"github.com/dmitrijs2005/tierforum/internal/dbx"
	"github.com/dmitrijs2005/tierforum/internal/server/models"
	"github.com/dmitrijs2005/tierforum/internal/server/repositories/nullable"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolation = "23503"

var newID = uuid.NewString

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a. If the question vanished in the meantime the foreign key
// fails and common.ErrorNotFound is returned.
func (r *PostgresRepository) Create(ctx context.Context, a *models.Answer) (*models.Answer, error) {
	query :=
		`INSERT INTO answers (id, body, question_id, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`

	id := newID()
	err := r.db.QueryRowContext(ctx, query, id, a.Body, a.QuestionID, nullable.String(a.UserID)).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	a.ID = id
	return a, nil
}

// ListByQuestion returns the answers of a question in creation order.
func (r *PostgresRepository) ListByQuestion(ctx context.Context, questionID string) ([]models.Answer, error) {
	query :=
		`SELECT a.id, a.question_id, a.body, a.user_id, a.created_at, a.updated_at,
		        u.id, u.display_name, u.tier
		 FROM answers a
		 LEFT JOIN users u ON u.id = a.user_id
		 WHERE a.question_id = $1
		 ORDER BY a.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Answer, 0)
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Update replaces the body and returns the answer joined with its author.
func (r *PostgresRepository) Update(ctx context.Context, id, body string) (*models.Answer, error) {
	query :=
		`WITH updated AS (
		     UPDATE answers SET body = $2, updated_at = now()
		     WHERE id = $1
		     RETURNING id, question_id, body, user_id, created_at, updated_at
		 )
		 SELECT a.id, a.question_id, a.body, a.user_id, a.created_at, a.updated_at,
		        u.id, u.display_name, u.tier
		 FROM updated a
		 LEFT JOIN users u ON u.id = a.user_id`

	a, err := scanAnswer(r.db.QueryRowContext(ctx, query, id, body))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM answers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) FindOwner(ctx context.Context, id string) (string, error) {
	var owner sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM answers WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return owner.String, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnswer(row scanner) (*models.Answer, error) {
	a := &models.Answer{}
	var owner sql.NullString
	var author nullable.AuthorColumns

	dest := []any{&a.ID, &a.QuestionID, &a.Body, &owner, &a.CreatedAt, &a.UpdatedAt}
	if err := row.Scan(append(dest, author.Targets()...)...); err != nil {
		return nil, err
	}

	a.UserID = owner.String
	a.Author = author.Author()
	return a, nil
}
