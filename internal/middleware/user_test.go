package middleware

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/taskdeck/backend/internal/infrastructure/kvstore"
	"github.com/taskdeck/backend/repository"
	boltRepo "github.com/taskdeck/backend/repository/bolt"
)

func newPrefs(t *testing.T) repository.PreferenceRepository {
	t.Helper()
	store, err := kvstore.Open(filepath.Join(t.TempDir(), "test.db"), "taskdeck")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return boltRepo.NewPreferenceRepository(store)
}

func TestRequireUser_RejectsWhenNobodyLoggedIn(t *testing.T) {
	prefs := newPrefs(t)

	called := false
	handler := RequireUser(prefs, nil)(func(ctx *fasthttp.RequestCtx) { called = true })

	ctx := &fasthttp.RequestCtx{}
	handler(ctx)

	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())
}

func TestRequireUser_UsesPersistedCurrentUser(t *testing.T) {
	prefs := newPrefs(t)
	require.NoError(t, prefs.SetCurrentUser(context.Background(), "alice"))

	var seen string
	handler := RequireUser(prefs, nil)(func(ctx *fasthttp.RequestCtx) {
		seen, _ = ctx.UserValue(UsernameKey).(string)
	})

	ctx := &fasthttp.RequestCtx{}
	handler(ctx)
	require.Equal(t, "alice", seen)
}

func TestRequireUser_HeaderOverridesPreference(t *testing.T) {
	prefs := newPrefs(t)
	require.NoError(t, prefs.SetCurrentUser(context.Background(), "alice"))

	var seen string
	handler := RequireUser(prefs, nil)(func(ctx *fasthttp.RequestCtx) {
		seen, _ = ctx.UserValue(UsernameKey).(string)
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.Set("X-Username", "bob")
	handler(ctx)
	require.Equal(t, "bob", seen)
}
