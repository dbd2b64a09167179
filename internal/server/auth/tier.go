// Package auth holds the identity core of the forum: tiers, identity claims,
// the signed token service and the password hasher.
package auth

import "fmt"

// Tier is a user's privilege level. Only TierQuestioner, TierAdvisor and
// TierAdmin are valid; other values never leave this package as a verified
// identity.
type Tier int

const (
	TierQuestioner Tier = 1
	TierAdvisor    Tier = 2
	TierAdmin      Tier = 3
)

// ClampTier coerces a requested signup tier into range. Zero means "not
// requested" and yields TierQuestioner.
func ClampTier(n int) Tier {
	switch {
	case n <= int(TierQuestioner):
		return TierQuestioner
	case n >= int(TierAdmin):
		return TierAdmin
	default:
		return Tier(n)
	}
}

// ParseTier converts n strictly, reporting false for out-of-range values.
func ParseTier(n int) (Tier, bool) {
	t := Tier(n)
	return t, t.Valid()
}

func (t Tier) Valid() bool {
	return t >= TierQuestioner && t <= TierAdmin
}

func (t Tier) String() string {
	switch t {
	case TierQuestioner:
		return "Questioner"
	case TierAdvisor:
		return "Advisor"
	case TierAdmin:
		return "Admin"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}
