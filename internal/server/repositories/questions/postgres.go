package questions

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
)

var newID = uuid.NewString

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, q *models.Question) (*models.Question, error) {
	query :=
		`INSERT INTO questions (id, title, body, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`

	id := newID()
	err := r.db.QueryRowContext(ctx, query, id, q.Title, nullable.String(q.Body), nullable.String(q.UserID)).
		Scan(&q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	q.ID = id
	return q, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Question, error) {
	query :=
		`SELECT q.id, q.title, q.body, q.user_id, q.created_at, q.updated_at,
		        u.id, u.display_name, u.tier,
		        (SELECT count(*) FROM answers a WHERE a.question_id = q.id)
		 FROM questions q
		 LEFT JOIN users u ON u.id = q.user_id
		 WHERE q.id = $1`

	q, err := scanQuestion(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return q, nil
}

// List returns all questions, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]models.Question, error) {
	query :=
		`SELECT q.id, q.title, q.body, q.user_id, q.created_at, q.updated_at,
		        u.id, u.display_name, u.tier,
		        (SELECT count(*) FROM answers a WHERE a.question_id = q.id)
		 FROM questions q
		 LEFT JOIN users u ON u.id = q.user_id
		 ORDER BY q.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Update replaces title and body; an empty argument keeps the stored value.
// The returned question carries its author and answer count like GetByID.
func (r *PostgresRepository) Update(ctx context.Context, id, title, body string) (*models.Question, error) {
	query :=
		`WITH updated AS (
		     UPDATE questions
		     SET title = COALESCE(NULLIF($2, ''), title),
		         body = COALESCE(NULLIF($3, ''), body),
		         updated_at = now()
		     WHERE id = $1
		     RETURNING id, title, body, user_id, created_at, updated_at
		 )
		 SELECT q.id, q.title, q.body, q.user_id, q.created_at, q.updated_at,
		        u.id, u.display_name, u.tier,
		        (SELECT count(*) FROM answers a WHERE a.question_id = q.id)
		 FROM updated q
		 LEFT JOIN users u ON u.id = q.user_id`

	q, err := scanQuestion(r.db.QueryRowContext(ctx, query, id, title, body))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return q, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
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
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM questions WHERE id = $1`, id).Scan(&owner)
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

func scanQuestion(row scanner) (*models.Question, error) {
	q := &models.Question{}
	var body, owner sql.NullString
	var author nullable.AuthorColumns

	dest := []any{&q.ID, &q.Title, &body, &owner, &q.CreatedAt, &q.UpdatedAt}
	dest = append(dest, author.Targets()...)
	dest = append(dest, &q.AnswerCount)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	q.Body = body.String
	q.UserID = owner.String
	q.Author = author.Author()
	return q, nil
}
