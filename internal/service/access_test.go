package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetvault/internal/domain"
)

func TestValidateAccess_DecisionTable(t *testing.T) {
	ownerID := "u-1"

	tests := []struct {
		name      string
		owner     *string
		actor     domain.Principal
		wantAllow bool
	}{
		{"ownerless, master", nil, domain.Principal{ID: "u-2", IsMaster: true}, true},
		{"ownerless, player", nil, domain.Principal{ID: "u-2"}, false},
		{"owned, master", &ownerID, domain.Principal{ID: "u-2", IsMaster: true}, true},
		{"owned, owning player", &ownerID, domain.Principal{ID: "u-1"}, true},
		{"owned, other player", &ownerID, domain.Principal{ID: "u-2"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAccess(tt.owner, tt.actor)
			if tt.wantAllow {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorAs(t, err, new(*domain.AccessDeniedError))
			// The denial message stays generic regardless of which rule failed.
			assert.EqualError(t, err, accessDeniedMessage)
		})
	}
}

func TestValidateAccess_MatchesByID(t *testing.T) {
	// Same display name, different stable identifier: no match.
	ownerID := "u-1"
	actor := domain.Principal{ID: "u-2", Name: "Alice"}

	err := ValidateAccess(&ownerID, actor)
	assert.ErrorAs(t, err, new(*domain.AccessDeniedError))
}

func TestAuthorizeCharacter(t *testing.T) {
	ownerID := "u-1"
	chars := charResolver{
		"c-1": {ID: "c-1", Name: "Aldric", OwnerID: &ownerID},
	}

	t.Run("unauthenticated", func(t *testing.T) {
		_, _, err := authorizeCharacter(context.Background(), chars, "c-1")
		assert.ErrorAs(t, err, new(*domain.UnauthenticatedError))
	})

	t.Run("missing character is 404 even for strangers", func(t *testing.T) {
		// Existence before ownership: a stranger probing a missing ID gets
		// NotFound, not AccessDenied.
		ctx := ctxWithActor(domain.Principal{ID: "u-9"})
		_, _, err := authorizeCharacter(ctx, chars, "c-404")
		assert.ErrorAs(t, err, new(*domain.NotFoundError))
	})

	t.Run("owner allowed", func(t *testing.T) {
		ctx := ctxWithActor(domain.Principal{ID: "u-1"})
		_, c, err := authorizeCharacter(ctx, chars, "c-1")
		require.NoError(t, err)
		assert.Equal(t, "c-1", c.ID)
	})

	t.Run("stranger denied", func(t *testing.T) {
		ctx := ctxWithActor(domain.Principal{ID: "u-9"})
		_, _, err := authorizeCharacter(ctx, chars, "c-1")
		assert.ErrorAs(t, err, new(*domain.AccessDeniedError))
	})
}
