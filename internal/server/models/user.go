// Package models holds the persistent entities of the forum.
package models

import (
	"time"

	"github.com/dmitrijs2005/tierforum/internal/server/auth"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Tier         auth.Tier
	CreatedAt    time.Time
}

// Claim returns the identity claim embedded into tokens issued for u.
func (u *User) Claim() auth.Claim {
	return auth.Claim{
		UserID:      u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Tier:        u.Tier,
	}
}

// Author is the public projection of a user shown next to questions and
// answers. It is nil for orphaned content.
type Author struct {
	ID          string
	DisplayName string
	Tier        auth.Tier
}
