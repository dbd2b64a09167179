// Package nullable converts between nullable SQL columns and the zero-value
// conventions used by models.
package nullable

import (
	"database/sql"

	"github.com/dmitrijs2005/tierforum/internal/server/auth"
	"github.com/dmitrijs2005/tierforum/internal/server/models"
)

// String maps "" to NULL.
func String(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// AuthorColumns receives the LEFT JOINed author columns of a row.
type AuthorColumns struct {
	ID          sql.NullString
	DisplayName sql.NullString
	Tier        sql.NullInt16
}

// Targets returns scan destinations in id, display_name, tier order.
func (a *AuthorColumns) Targets() []any {
	return []any{&a.ID, &a.DisplayName, &a.Tier}
}

// Author returns nil when the author row is missing or carries an invalid
// tier.
func (a *AuthorColumns) Author() *models.Author {
	if !a.ID.Valid {
		return nil
	}
	tier, ok := auth.ParseTier(int(a.Tier.Int16))
	if !ok {
		return nil
	}
	return &models.Author{ID: a.ID.String, DisplayName: a.DisplayName.String, Tier: tier}
}
