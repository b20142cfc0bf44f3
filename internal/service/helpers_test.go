package service

import (
	"context"
	"fmt"
	"time"

	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/repository"
	"daily_challenge_backend/internal/store"
	"daily_challenge_backend/pkg/logger"

	"go.uber.org/zap"
)

func init() {
	logger.Log = zap.NewNop()
}

var fixedNow = time.Date(2025, 9, 9, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	store     *store.MemoryStore
	users     *repository.UserRepository
	challenge *repository.ChallengeRepository
	progress  *repository.ProgressRepository
	session   *repository.SessionRepository
}

func newTestEnv() *testEnv {
	s := store.NewMemoryStore()
	return &testEnv{
		store:     s,
		users:     repository.NewUserRepository(s),
		challenge: repository.NewChallengeRepository(s),
		progress:  repository.NewProgressRepository(s),
		session:   repository.NewSessionRepository(s),
	}
}

func (e *testEnv) addUser(ctx context.Context, id int64, role model.UserRole) *model.User {
	u := &model.User{
		ID:       id,
		Name:     fmt.Sprintf("User %d", id),
		Email:    fmt.Sprintf("user%d@example.com", id),
		Password: "secret123",
		Role:     role,
	}
	if err := e.users.Add(ctx, u); err != nil {
		panic(err)
	}
	return u
}

func (e *testEnv) addChallenge(ctx context.Context, c *model.Challenge) {
	if err := e.challenge.Add(ctx, c); err != nil {
		panic(err)
	}
}

func todayMCQ() *model.Challenge {
	return &model.Challenge{
		ID:       200,
		Question: "Which keyword declares a constant?",
		Options:  []string{"A. var", "B. const", "C. let", "D. def"},
		Answer:   "B",
		Date:     "2025-09-09",
		Category: model.CategoryNonTechnical,
		Type:     model.TypeMCQ,
	}
}

func todayCoding() *model.Challenge {
	return &model.Challenge{
		ID:             100,
		Question:       "Print the star pattern for n=5.",
		Answer:         "for i in range(1, 6):\n    print('* ' * i)",
		ExpectedOutput: ExpectedPattern,
		Date:           "2025-09-09",
		Category:       model.CategoryTechnical,
		Type:           model.TypeCoding,
	}
}

func newTestChallengeService(e *testEnv) *ChallengeService {
	svc := NewChallengeService(e.challenge, e.progress, NewCodeRunner(), time.UTC)
	svc.now = func() time.Time { return fixedNow }
	return svc
}
