package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tierforum/internal/common"
	"github.com/dmitrijs2005/tierforum/internal/server/auth"
	"github.com/dmitrijs2005/tierforum/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertQuery = `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*email,\s*password_hash,\s*display_name,\s*tier\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+created_at$`
	selectQuery = `(?s)^SELECT\s+id,\s*email,\s*password_hash,\s*display_name,\s*tier,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func stubID(t *testing.T, id string) {
	t.Helper()
	orig := newID
	newID = func() string { return id }
	t.Cleanup(func() { newID = orig })
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()
	stubID(t, "u-1")

	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertQuery).
		WithArgs("u-1", "ada@example.com", "digest", "Ada", 3).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	u := &models.User{Email: "ada@example.com", PasswordHash: "digest", DisplayName: "Ada", Tier: auth.TierAdmin}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "u-1" || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), &models.User{Email: "ada@example.com", Tier: auth.TierQuestioner})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Email: "ada@example.com", Tier: auth.TierQuestioner})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetUserByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "display_name", "tier", "created_at"}).
		AddRow("u-1", "ada@example.com", "digest", "Ada", 2, time.Now())
	mock.ExpectQuery(selectQuery).WithArgs("ada@example.com").WillReturnRows(rows)

	got, err := repo.GetUserByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail error: %v", err)
	}
	if got.ID != "u-1" || got.Tier != auth.TierAdvisor || got.PasswordHash != "digest" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetUserByEmail_InvalidTier(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "display_name", "tier", "created_at"}).
		AddRow("u-1", "ada@example.com", "digest", "Ada", 9, time.Now())
	mock.ExpectQuery(selectQuery).WithArgs("ada@example.com").WillReturnRows(rows)

	if _, err := repo.GetUserByEmail(context.Background(), "ada@example.com"); err == nil {
		t.Fatal("expected error for out-of-range tier")
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).WithArgs("ghost@example.com").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetUserByEmail_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).WithArgs("ada@example.com").WillReturnError(errors.New("db err"))

	_, err := repo.GetUserByEmail(context.Background(), "ada@example.com")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
