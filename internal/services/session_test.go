package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetadmin/internal/models"
)

func TestSessionService_Login(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	root, err := f.store.Create(ctx, models.RoleSuperAdmin, "root@x.com", "Root", "pw")
	require.NoError(t, err)

	result, err := f.sessions.Login(ctx, models.RoleSuperAdmin, "root@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, root.ID, result.ID)
	assert.Equal(t, "Root", result.Name)
	assert.Equal(t, "root@x.com", result.Email)

	id, err := f.tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, root.ID, id)

	_, err = f.sessions.Login(ctx, models.RoleSuperAdmin, "root@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, "Invalid Super Admin Email or Password", err.Error())

	_, err = f.sessions.Login(ctx, models.RoleAdmin, "root@x.com", "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, "Invalid Admin Email or Password", err.Error())
}
