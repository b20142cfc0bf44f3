package repository

import (
	"context"
	"testing"

	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/store"
	"daily_challenge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCorruptBlobReadsEmpty(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(ctx, store.KeyUsers, "{broken"))

	repo := NewUserRepository(s)
	users, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	// Writing through the corrupt blob replaces it.
	require.NoError(t, repo.Add(ctx, &model.User{ID: 1, Email: "a@b.co"}))
	users, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepositoryFindAndUpdateRole(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.NewMemoryStore())

	require.NoError(t, repo.Add(ctx, &model.User{ID: 1, Email: "a@b.co", Role: model.RoleUser}))
	require.NoError(t, repo.Add(ctx, &model.User{ID: 2, Email: "c@d.co", Role: model.RoleUser}))

	found, err := repo.FindByEmail(ctx, "c@d.co")
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.ID)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	updated, err := repo.UpdateRole(ctx, 2, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)

	persisted, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, persisted.Role)

	_, err = repo.UpdateRole(ctx, 99, model.RoleAdmin)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestProgressRepositoryAlwaysUsable(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repo := NewProgressRepository(s)

	missing, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	assert.NotNil(t, missing.Submissions)
	assert.Equal(t, 0, missing.TotalScore)

	require.NoError(t, s.Set(ctx, store.ProgressKey(7), "not json"))
	corrupt, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	assert.NotNil(t, corrupt.Submissions)

	require.NoError(t, s.Set(ctx, store.ProgressKey(7), `{"totalScore":30}`))
	loaded, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 30, loaded.TotalScore)
	assert.NotNil(t, loaded.Submissions)
}

func TestSessionRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repo := NewSessionRepository(s)

	current, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	user := &model.User{ID: 5, Name: "Eve", Role: model.RoleUser}
	require.NoError(t, repo.Set(ctx, user))

	current, err = repo.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, int64(5), current.ID)

	require.NoError(t, repo.Clear(ctx))
	current, err = repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSessionRepositoryClearsCorruptRecord(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repo := NewSessionRepository(s)
	require.NoError(t, s.Set(ctx, store.KeyCurrentUser, "][nope"))

	current, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	_, ok, err := s.Get(ctx, store.KeyCurrentUser)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChallengeRepositoryAddAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewChallengeRepository(store.NewMemoryStore())

	require.NoError(t, repo.Add(ctx, &model.Challenge{ID: 1, Category: model.CategoryTechnical}))
	require.NoError(t, repo.Add(ctx, &model.Challenge{ID: 2, Category: model.CategoryNonTechnical}))

	challenges, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, challenges, 2)
	assert.Equal(t, int64(1), challenges[0].ID)
	assert.Equal(t, int64(2), challenges[1].ID)
}
