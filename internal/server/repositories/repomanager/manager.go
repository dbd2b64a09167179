// Package repomanager vends repositories bound to a pool or a transaction
// and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tierforum/internal/dbx"
	"github.com/dmitrijs2005/tierforum/internal/server/repositories/answers"
	"github.com/dmitrijs2005/tierforum/internal/server/repositories/questions"
	"github.com/dmitrijs2005/tierforum/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Questions(db dbx.DBTX) questions.Repository
	Answers(db dbx.DBTX) answers.Repository
}
