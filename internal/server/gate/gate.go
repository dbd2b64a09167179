// Package gate is the per-request authorization point. It turns a raw
// authorization header plus the requested action into a single decision
// before any storage mutation happens:
//
//	START -> TOKEN_CHECK -> [RESOURCE_LOOKUP] -> POLICY_CHECK -> ALLOWED | DENIED
//
// Token and policy failures are denials. Only a failing storage lookup
// produces an error, which always wraps common.ErrorInternal.
package gate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tierforum/internal/common"
	"github.com/dmitrijs2005/tierforum/internal/logging"
	"github.com/dmitrijs2005/tierforum/internal/server/auth"
	"github.com/dmitrijs2005/tierforum/internal/server/policy"
)

// UnauthenticatedMessage is the only message returned for token failures, so
// that expired and forged tokens are indistinguishable to clients.
const UnauthenticatedMessage = "unauthorized"

// ResourceKind names the type of resource an action targets.
type ResourceKind int

const (
	ResourceQuestion ResourceKind = iota + 1
	ResourceAnswer
)

func (k ResourceKind) String() string {
	switch k {
	case ResourceQuestion:
		return "question"
	case ResourceAnswer:
		return "answer"
	default:
		return "resource"
	}
}

// Plural is the plural noun used in denial messages.
func (k ResourceKind) Plural() string {
	switch k {
	case ResourceQuestion:
		return "questions"
	case ResourceAnswer:
		return "answers"
	default:
		return "resources"
	}
}

// Target identifies the resource an edit or delete applies to.
type Target struct {
	Kind ResourceKind
	ID   string
}

// TokenVerifier is satisfied by *auth.TokenService.
type TokenVerifier interface {
	Verify(token string) (auth.Claim, bool)
}

// OwnerResolver looks up the author of a resource. It returns
// common.ErrorNotFound when the resource does not exist and an empty owner
// for an orphaned resource.
type OwnerResolver interface {
	ResourceOwner(ctx context.Context, kind ResourceKind, id string) (string, error)
}

type Gate struct {
	tokens TokenVerifier
	owners OwnerResolver
	logger logging.Logger
}

func New(tokens TokenVerifier, owners OwnerResolver, logger logging.Logger) *Gate {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Gate{
		tokens: tokens,
		owners: owners,
		logger: logger.With("module", "gate"),
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// value. The scheme is matched case-insensitively and must be followed by
// exactly one space; surrounding whitespace of the whole header is ignored.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

// Identify authenticates the header without any further permission check.
func (g *Gate) Identify(ctx context.Context, rawHeader string) Decision {
	d, _ := g.Authorize(ctx, rawHeader, policy.ActionIdentify, nil)
	return d
}

// Authorize decides whether the bearer of rawHeader may perform action on
// target. target may be nil for actions that do not address an existing
// resource; for edit and delete it is resolved before the policy runs, so a
// missing resource is reported as not found even to callers who would be
// forbidden.
func (g *Gate) Authorize(ctx context.Context, rawHeader string, action policy.Action, target *Target) (Decision, error) {
	token, ok := BearerToken(rawHeader)
	if !ok {
		return denied(DenialUnauthenticated, StageTokenCheck, auth.Claim{}, UnauthenticatedMessage), nil
	}

	claim, ok := g.tokens.Verify(token)
	if !ok {
		return denied(DenialUnauthenticated, StageTokenCheck, auth.Claim{}, UnauthenticatedMessage), nil
	}

	stage := StageTokenCheck
	var ownerID string
	var kind ResourceKind
	if target != nil {
		kind = target.Kind
	}
	resource := kind.String()

	if target != nil && action.TargetsExisting() {
		stage = StageResourceLookup

		owner, err := g.owners.ResourceOwner(ctx, target.Kind, target.ID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return denied(DenialNotFound, stage, claim, resource+" not found"), nil
			}
			g.logger.Error(ctx, "ownership lookup failed",
				"action", action.String(), "resource", resource, "resource_id", target.ID, "error", err)
			return Decision{}, fmt.Errorf("resolve %s owner: %w", resource, errors.Join(common.ErrorInternal, err))
		}
		ownerID = owner
	}

	stage = StagePolicyCheck
	if !policy.Allows(action, claim, ownerID) {
		g.logger.Debug(ctx, "request forbidden",
			"action", action.String(), "user_id", claim.UserID, "tier", int(claim.Tier))
		return denied(DenialForbidden, stage, claim, policy.DenialMessage(action, resource, kind.Plural())), nil
	}

	return allowed(claim, stage), nil
}
