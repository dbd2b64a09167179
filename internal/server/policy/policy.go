// Package policy decides what an identity may do in the forum. Every
// function is pure: the answer depends only on the tier and the ids passed
// in.
package policy

import (
	"fmt"

	"github.com/dmitrijs2005/tierforum/internal/server/auth"
)

// CanAskQuestion reports whether tier may post questions.
func CanAskQuestion(tier auth.Tier) bool {
	return tier >= auth.TierQuestioner
}

// CanAnswer reports whether tier may post answers.
func CanAnswer(tier auth.Tier) bool {
	return tier >= auth.TierAdvisor
}

// CanModerate reports whether tier may delete any question or answer.
func CanModerate(tier auth.Tier) bool {
	return tier >= auth.TierAdmin
}

// CanEdit reports whether actorID may edit a resource authored by ownerID.
// An empty ownerID marks an orphaned resource, editable by admins only.
func CanEdit(tier auth.Tier, actorID, ownerID string) bool {
	if CanModerate(tier) {
		return true
	}
	return ownerID != "" && actorID == ownerID
}

// Action is a kind of protected operation.
type Action int

const (
	// ActionIdentify only requires a valid identity.
	ActionIdentify Action = iota
	ActionAsk
	ActionAnswer
	ActionEdit
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionIdentify:
		return "identify"
	case ActionAsk:
		return "ask"
	case ActionAnswer:
		return "answer"
	case ActionEdit:
		return "edit"
	case ActionDelete:
		return "delete"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// TargetsExisting reports whether the action operates on an existing
// resource, whose presence must be established before permission is judged.
func (a Action) TargetsExisting() bool {
	return a == ActionEdit || a == ActionDelete
}

// OwnerSensitive reports whether the decision depends on resource ownership.
func (a Action) OwnerSensitive() bool {
	return a == ActionEdit
}

// Allows applies the rule for action to claim. ownerID is only consulted for
// owner-sensitive actions. Unknown actions are denied.
func Allows(action Action, claim auth.Claim, ownerID string) bool {
	if !claim.Tier.Valid() {
		return false
	}

	switch action {
	case ActionIdentify:
		return true
	case ActionAsk:
		return CanAskQuestion(claim.Tier)
	case ActionAnswer:
		return CanAnswer(claim.Tier)
	case ActionEdit:
		return CanEdit(claim.Tier, claim.UserID, ownerID)
	case ActionDelete:
		return CanModerate(claim.Tier)
	default:
		return false
	}
}

// DenialMessage is the reason given to a caller whose identity is valid but
// not sufficient for action on a resource. singular and plural name the
// resource kind, e.g. "question" and "questions".
func DenialMessage(action Action, singular, plural string) string {
	switch action {
	case ActionAsk:
		return "You must be Tier 1 or higher to ask questions"
	case ActionAnswer:
		return "You must be Tier 2 or higher to answer questions"
	case ActionEdit:
		return fmt.Sprintf("You do not have permission to edit this %s", singular)
	case ActionDelete:
		return fmt.Sprintf("Only Tier 3 admins can delete %s", plural)
	default:
		return "You do not have permission to perform this action"
	}
}
