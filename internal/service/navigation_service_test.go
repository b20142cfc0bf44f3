package service

import (
	"context"
	"testing"

	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUnknownPage(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := NewNavigationService(env.session)

	_, err := svc.Resolve(ctx, "profile")
	assert.ErrorIs(t, err, util.ErrPageNotFound)
}

func TestResolveAuthPagesHideNavbar(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := NewNavigationService(env.session)

	for _, name := range []string{"login", "signup"} {
		view, err := svc.Resolve(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, Page(name), view.Page)
		assert.False(t, view.ShowNavbar)
		assert.Empty(t, view.Redirect)
	}
}

func TestResolveRedirectsToLoginWithoutSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := NewNavigationService(env.session)

	view, err := svc.Resolve(ctx, "dashboard")
	require.NoError(t, err)
	assert.Equal(t, PageLogin, view.Redirect)
}

func TestResolveAdminPageForRegularUser(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := NewNavigationService(env.session)
	user := env.addUser(ctx, 10, model.RoleUser)
	require.NoError(t, env.session.Set(ctx, user))

	view, err := svc.Resolve(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, PageAccessDenied, view.Page)
	assert.True(t, view.ShowNavbar)
	assert.False(t, view.ShowAdminLink)
}

func TestResolveAdminPageForAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := NewNavigationService(env.session)
	admin := env.addUser(ctx, 1, model.RoleAdmin)
	require.NoError(t, env.session.Set(ctx, admin))

	view, err := svc.Resolve(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, PageAdmin, view.Page)
	assert.True(t, view.ShowAdminLink)
	assert.True(t, view.ShowAdminCard)
	assert.Equal(t, admin.Name, view.UserName)
}

func TestResolveDashboardForUserHidesAdminControls(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := NewNavigationService(env.session)
	user := env.addUser(ctx, 10, model.RoleUser)
	require.NoError(t, env.session.Set(ctx, user))

	view, err := svc.Resolve(ctx, "dashboard")
	require.NoError(t, err)
	assert.Equal(t, PageDashboard, view.Page)
	assert.True(t, view.ShowNavbar)
	assert.False(t, view.ShowAdminLink)
	assert.False(t, view.ShowAdminCard)
}
