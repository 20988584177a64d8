package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetadmin/internal/models"
)

func TestAuthorizationGate_Authorize(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	root, err := f.store.Create(ctx, models.RoleSuperAdmin, "root@x.com", "Root", "pw")
	require.NoError(t, err)
	admin, err := f.store.Create(ctx, models.RoleAdmin, "alice@x.com", "Alice", "pw")
	require.NoError(t, err)

	rootToken, err := f.tokens.Issue(root)
	require.NoError(t, err)
	adminToken, err := f.tokens.Issue(admin)
	require.NoError(t, err)
	ghostToken, err := f.tokens.Issue(&models.Identity{ID: uuid.New()})
	require.NoError(t, err)

	adminRoute := []models.Role{models.RoleAdmin, models.RoleSuperAdmin}
	superRoute := []models.Role{models.RoleSuperAdmin}

	tests := []struct {
		name    string
		header  string
		allowed []models.Role
		wantID  uuid.UUID
		wantErr error
	}{
		{"super admin on super route", "Bearer " + rootToken, superRoute, root.ID, nil},
		{"super admin on admin route", "Bearer " + rootToken, adminRoute, root.ID, nil},
		{"admin on admin route", "Bearer " + adminToken, adminRoute, admin.ID, nil},
		{"admin on super route", "Bearer " + adminToken, superRoute, uuid.Nil, ErrTokenFailed},
		{"missing header", "", adminRoute, uuid.Nil, ErrNoToken},
		{"no bearer prefix", rootToken, superRoute, uuid.Nil, ErrNoToken},
		{"bearer without token", "Bearer ", superRoute, uuid.Nil, ErrNoToken},
		{"garbage token", "Bearer abc", superRoute, uuid.Nil, ErrTokenFailed},
		{"unknown identity", "Bearer " + ghostToken, adminRoute, uuid.Nil, ErrTokenFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := f.gate.Authorize(ctx, tt.header, tt.allowed...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrUnauthorized)
				assert.Nil(t, identity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, identity.ID)
		})
	}
}

func TestAuthorizationGate_RemovedIdentity(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	admin, err := f.store.Create(ctx, models.RoleAdmin, "alice@x.com", "Alice", "pw")
	require.NoError(t, err)
	token, err := f.tokens.Issue(admin)
	require.NoError(t, err)

	f.identities.remove(admin.ID)

	_, err = f.gate.Authorize(ctx, "Bearer "+token, models.RoleAdmin)
	assert.ErrorIs(t, err, ErrTokenFailed)
}

func TestAuthorizationGate_StoreFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	admin, err := f.store.Create(ctx, models.RoleAdmin, "alice@x.com", "Alice", "pw")
	require.NoError(t, err)
	token, err := f.tokens.Issue(admin)
	require.NoError(t, err)

	f.identities.findErr = errors.New("connection refused")
	_, err = f.gate.Authorize(ctx, "Bearer "+token, models.RoleAdmin)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}
