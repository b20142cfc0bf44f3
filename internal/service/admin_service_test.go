package service

import (
	"context"
	"testing"

	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdminService(e *testEnv) *AdminService {
	return NewAdminService(e.users, e.challenge, e.progress, e.session)
}

func TestAddChallengeMCQRequiresFourOptions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newTestAdminService(env)
	admin := env.addUser(ctx, 1, model.RoleAdmin)

	in := NewChallengeInput{
		Category: model.CategoryNonTechnical,
		Question: "Pick one",
		Answer:   "A",
		Date:     "2025-09-10",
		Options:  []string{"A. one", "B. two", "C. three"},
	}
	_, err := svc.AddChallenge(ctx, admin, in)
	assert.ErrorIs(t, err, util.ErrValidation)

	in.Options = append(in.Options, "D. four")
	challenge, err := svc.AddChallenge(ctx, admin, in)
	require.NoError(t, err)
	assert.Equal(t, model.TypeMCQ, challenge.Type)
	assert.Equal(t, admin.Email, challenge.CreatedBy)
}

func TestAddChallengeTechnicalSetsExpectedOutput(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newTestAdminService(env)
	admin := env.addUser(ctx, 1, model.RoleAdmin)

	challenge, err := svc.AddChallenge(ctx, admin, NewChallengeInput{
		Category: model.CategoryTechnical,
		Question: "Print the pattern",
		Answer:   "for i in range(5): print(i)",
		Date:     "2025-09-10",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TypeCoding, challenge.Type)
	assert.Equal(t, challenge.Answer, challenge.ExpectedOutput)
}

func TestChangeUserRoleRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newTestAdminService(env)
	admin := env.addUser(ctx, 1, model.RoleAdmin)
	env.addUser(ctx, 2, model.RoleUser)

	_, err := svc.ChangeUserRole(ctx, admin, 2, model.RoleAdmin, false)
	assert.ErrorIs(t, err, util.ErrConfirmRequired)

	updated, err := svc.ChangeUserRole(ctx, admin, 2, model.RoleAdmin, true)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)
}

func TestChangeUserRoleUnknownUser(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newTestAdminService(env)
	admin := env.addUser(ctx, 1, model.RoleAdmin)

	_, err := svc.ChangeUserRole(ctx, admin, 999, model.RoleUser, true)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestChangeOwnRoleUpdatesSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newTestAdminService(env)
	admin := env.addUser(ctx, 1, model.RoleAdmin)
	require.NoError(t, env.session.Set(ctx, admin))

	updated, err := svc.ChangeUserRole(ctx, admin, admin.ID, model.RoleUser, true)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, updated.Role)

	current, err := env.session.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, model.RoleUser, current.Role)
}

func TestStudentReportsSkipAdminsAndGuardAverage(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newTestAdminService(env)
	env.addUser(ctx, 1, model.RoleAdmin)
	student := env.addUser(ctx, 2, model.RoleUser)
	env.addUser(ctx, 3, model.RoleUser)

	require.NoError(t, env.progress.Save(ctx, student.ID, &model.Progress{
		TotalScore: 35,
		Submissions: []model.Submission{
			{ChallengeID: 1, Type: model.SubmissionTechnical, Points: 20},
			{ChallengeID: 2, Type: model.SubmissionMCQ, Points: 10},
			{ChallengeID: 3, Type: model.SubmissionTechnical, Points: 5},
		},
	}))

	reports, err := svc.StudentReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, student.ID, reports[0].ID)
	assert.Equal(t, 3, reports[0].SubmissionCount)
	assert.Equal(t, 12, reports[0].AverageScore)

	// No submissions yet: the average stays zero instead of dividing by zero.
	assert.Equal(t, 0, reports[1].SubmissionCount)
	assert.Equal(t, 0, reports[1].AverageScore)
}

func TestAnalyticsFigures(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newTestAdminService(env)
	env.addUser(ctx, 1, model.RoleAdmin)
	env.addUser(ctx, 2, model.RoleUser)
	env.addUser(ctx, 3, model.RoleUser)
	env.addUser(ctx, 4, model.RoleUser)
	env.addChallenge(ctx, todayMCQ())
	env.addChallenge(ctx, todayCoding())

	stats, err := svc.Analytics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalUsers)
	assert.Equal(t, 1, stats.AdminUsers)
	assert.Equal(t, 3, stats.RegularUsers)
	assert.Equal(t, 1, stats.ActiveToday) // floor(3 * 0.6)
	assert.Equal(t, 2, stats.TotalChallenges)
	assert.Equal(t, 25, stats.CompletionRate) // round(1/4 * 100)
}

func TestAnalyticsEmptySystem(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	svc := newTestAdminService(env)

	stats, err := svc.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalUsers)
	assert.Equal(t, 0, stats.CompletionRate)
}
