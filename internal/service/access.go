// Package service implements the application services: credential
// verification, token issuance, and character sheet operations guarded by
// the ownership access policy.
package service

import (
	"context"

	"sheetvault/internal/domain"
)

// accessDeniedMessage is deliberately generic: it never reveals whether the
// ownership rule or the role rule failed.
const accessDeniedMessage = "User does not have permission to modify this resource"

// ValidateAccess decides whether the actor may access a resource owned by
// resourceOwnerID. The policy has exactly two rules, identical for reads and
// mutations: the actor owns the resource, or the actor holds the elevated
// master role. An ownerless resource is accessible only to masters.
//
// Preconditions handled by callers, not here: a missing actor surfaces as
// UnauthenticatedError and a missing resource as NotFoundError, both before
// this policy is consulted.
func ValidateAccess(resourceOwnerID *string, actor domain.Principal) error {
	if actor.IsMaster {
		return nil
	}
	if resourceOwnerID != nil && *resourceOwnerID == actor.ID {
		return nil
	}
	return domain.ErrAccessDenied(accessDeniedMessage)
}

// characterResolver is the subset of the character repository needed to
// resolve a sheet's parent record.
type characterResolver interface {
	GetByID(ctx context.Context, id string) (*domain.Character, error)
}

// authorizeCharacter resolves the character and checks the actor's access to
// it. Existence is checked before ownership so a missing character is always
// a 404, never a 403.
func authorizeCharacter(ctx context.Context, chars characterResolver, characterID string) (domain.Principal, *domain.Character, error) {
	actor, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return domain.Principal{}, nil, err
	}
	c, err := chars.GetByID(ctx, characterID)
	if err != nil {
		return domain.Principal{}, nil, err
	}
	if err := ValidateAccess(c.OwnerID, actor); err != nil {
		return domain.Principal{}, nil, err
	}
	return actor, c, nil
}
