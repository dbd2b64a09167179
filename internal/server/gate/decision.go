package gate

import (
	"fmt"

	"github.com/dmitrijs2005/tierforum/internal/common"
	"github.com/dmitrijs2005/tierforum/internal/server/auth"
)

// Status is the terminal state of an authorization.
type Status int

const (
	StatusDenied Status = iota
	StatusAllowed
)

// DenialKind tells callers why a request was denied. Each kind maps to its
// own externally visible status.
type DenialKind int

const (
	DenialNone DenialKind = iota
	DenialUnauthenticated
	DenialForbidden
	DenialNotFound
)

func (k DenialKind) String() string {
	switch k {
	case DenialNone:
		return "none"
	case DenialUnauthenticated:
		return "unauthenticated"
	case DenialForbidden:
		return "forbidden"
	case DenialNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("denial(%d)", int(k))
	}
}

// Stage is the last step the gate reached.
type Stage int

const (
	StageTokenCheck Stage = iota
	StageResourceLookup
	StagePolicyCheck
)

func (s Stage) String() string {
	switch s {
	case StageTokenCheck:
		return "token_check"
	case StageResourceLookup:
		return "resource_lookup"
	case StagePolicyCheck:
		return "policy_check"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Decision is the outcome of Gate.Authorize. Claim is set whenever the token
// verified, including forbidden and not-found denials.
type Decision struct {
	Status  Status
	Kind    DenialKind
	Message string
	Stage   Stage
	Claim   auth.Claim
}

func (d Decision) Allowed() bool {
	return d.Status == StatusAllowed
}

// Err returns nil for an allowed decision and a *DeniedError otherwise.
func (d Decision) Err() error {
	if d.Allowed() {
		return nil
	}
	return &DeniedError{Kind: d.Kind, Message: d.Message}
}

// DeniedError carries a denial across service boundaries. It matches
// common.ErrorUnauthenticated, common.ErrorForbidden or common.ErrorNotFound
// under errors.Is, depending on Kind.
type DeniedError struct {
	Kind    DenialKind
	Message string
}

func (e *DeniedError) Error() string {
	return e.Message
}

func (e *DeniedError) Is(target error) bool {
	switch e.Kind {
	case DenialUnauthenticated:
		return target == common.ErrorUnauthenticated
	case DenialForbidden:
		return target == common.ErrorForbidden
	case DenialNotFound:
		return target == common.ErrorNotFound
	default:
		return false
	}
}

func allowed(claim auth.Claim, stage Stage) Decision {
	return Decision{Status: StatusAllowed, Claim: claim, Stage: stage}
}

func denied(kind DenialKind, stage Stage, claim auth.Claim, msg string) Decision {
	return Decision{Status: StatusDenied, Kind: kind, Stage: stage, Claim: claim, Message: msg}
}
