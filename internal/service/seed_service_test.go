package service

import (
	"context"
	"math/rand"
	"testing"

	"daily_challenge_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSeedService(e *testEnv) *SeedService {
	return NewSeedService(e.users, e.challenge, e.progress, rand.New(rand.NewSource(1)))
}

func TestSeedPopulatesEmptyStore(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newTestSeedService(env)

	require.NoError(t, svc.Seed(ctx))

	users, err := env.users.All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "admin@dailychallenge.com", users[0].Email)
	assert.Equal(t, model.RoleAdmin, users[0].Role)

	challenges, err := env.challenge.All(ctx)
	require.NoError(t, err)
	require.Len(t, challenges, 2)
	assert.Equal(t, "2025-09-09", challenges[0].Date)

	// The admin's progress is fixed; the others fall in the random ranges.
	adminProgress, err := env.progress.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 500, adminProgress.TotalScore)
	assert.Equal(t, 15, adminProgress.CompletedChallenges)
	assert.Equal(t, 12, adminProgress.CurrentStreak)

	for _, id := range []int64{2, 3} {
		progress, err := env.progress.Get(ctx, id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, progress.TotalScore, 100)
		assert.LessOrEqual(t, progress.TotalScore, 499)
		assert.GreaterOrEqual(t, progress.CompletedChallenges, 3)
		assert.GreaterOrEqual(t, progress.CurrentStreak, 2)
		assert.NotNil(t, progress.LastActivity)
	}
}

func TestSeedLeavesExistingDataAlone(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newTestSeedService(env)

	existing := env.addUser(ctx, 42, model.RoleUser)
	require.NoError(t, svc.Seed(ctx))

	users, err := env.users.All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, existing.ID, users[0].ID)
}

func TestSeedIsIdempotentForProgress(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newTestSeedService(env)

	require.NoError(t, svc.Seed(ctx))

	touched := &model.Progress{TotalScore: 7, Submissions: []model.Submission{}}
	now := fixedNow
	touched.LastActivity = &now
	require.NoError(t, env.progress.Save(ctx, 2, touched))

	require.NoError(t, svc.Seed(ctx))

	progress, err := env.progress.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 7, progress.TotalScore)
}
