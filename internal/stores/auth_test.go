package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere_back_end/internal/cache"
)

func newTestAuthStore(kv cache.Store) *AuthStore {
	s := NewAuthStore(kv)
	s.SetDelay(0)
	return s
}

func TestAuthLoginSuccess(t *testing.T) {
	auth := newTestAuthStore(cache.NewMemoryStore())

	ok := auth.Login(context.Background(), AdminEmail, "admin123")
	require.True(t, ok)
	require.True(t, auth.IsAuthenticated())

	user := auth.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "admin-001", user.ID)
	assert.Equal(t, AdminEmail, user.Email)
	assert.Equal(t, "admin", user.Role)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	auth := newTestAuthStore(cache.NewMemoryStore())
	ctx := context.Background()

	assert.False(t, auth.Login(ctx, AdminEmail, "mauvais"))
	assert.False(t, auth.Login(ctx, "autre@exemple.com", "admin123"))
	assert.False(t, auth.IsAuthenticated())
	assert.Nil(t, auth.CurrentUser())
}

func TestAuthLogout(t *testing.T) {
	auth := newTestAuthStore(cache.NewMemoryStore())
	require.True(t, auth.Login(context.Background(), AdminEmail, "admin123"))

	auth.Logout()
	assert.False(t, auth.IsAuthenticated())
	assert.Nil(t, auth.CurrentUser())

	// Logout sans session est sans effet
	auth.Logout()
	assert.False(t, auth.IsAuthenticated())
}

func TestAuthSessionRehydrate(t *testing.T) {
	kv := cache.NewMemoryStore()

	auth := newTestAuthStore(kv)
	require.True(t, auth.Login(context.Background(), AdminEmail, "admin123"))

	reloaded := newTestAuthStore(kv)
	require.True(t, reloaded.IsAuthenticated())
	assert.Equal(t, "admin-001", reloaded.CurrentUser().ID)

	// La déconnexion efface aussi l'état persisté
	reloaded.Logout()
	again := newTestAuthStore(kv)
	assert.False(t, again.IsAuthenticated())
}

func TestAuthLoginCancelledContext(t *testing.T) {
	auth := NewAuthStore(cache.NewMemoryStore())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, auth.Login(ctx, AdminEmail, "admin123"))
}
