package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tierforum/internal/common"
	"github.com/dmitrijs2005/tierforum/internal/server/gate"
	"github.com/dmitrijs2005/tierforum/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// OwnerResolver answers the gate's ownership lookups from the repositories.
type OwnerResolver struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewOwnerResolver(db *sql.DB, m repomanager.RepositoryManager) *OwnerResolver {
	return &OwnerResolver{db: db, repomanager: m}
}

// ResourceOwner returns common.ErrorNotFound for ids that are not UUIDs
// without querying storage.
func (r *OwnerResolver) ResourceOwner(ctx context.Context, kind gate.ResourceKind, id string) (string, error) {
	if !validID(id) {
		return "", common.ErrorNotFound
	}

	switch kind {
	case gate.ResourceQuestion:
		return r.repomanager.Questions(r.db).FindOwner(ctx, id)
	case gate.ResourceAnswer:
		return r.repomanager.Answers(r.db).FindOwner(ctx, id)
	default:
		return "", fmt.Errorf("unknown resource kind %d", int(kind))
	}
}

func validID(id string) bool {
	return uuid.Validate(id) == nil
}
