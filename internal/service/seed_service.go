package service

import (
	"context"
	"math/rand"
	"time"

	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/repository"
	"daily_challenge_backend/pkg/logger"
)

// SeedService materializes the demo data set on first run: three users, two
// challenges on a fixed day, and a progress record per seeded user. Existing
// collections are never touched.
type SeedService struct {
	UserRepo      *repository.UserRepository
	ChallengeRepo *repository.ChallengeRepository
	ProgressRepo  *repository.ProgressRepository

	rng *rand.Rand
}

func NewSeedService(userRepo *repository.UserRepository, challengeRepo *repository.ChallengeRepository, progressRepo *repository.ProgressRepository, rng *rand.Rand) *SeedService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SeedService{
		UserRepo:      userRepo,
		ChallengeRepo: challengeRepo,
		ProgressRepo:  progressRepo,
		rng:           rng,
	}
}

func demoUsers() []model.User {
	return []model.User{
		{
			ID:        1,
			Name:      "Admin User",
			Email:     "admin@dailychallenge.com",
			Password:  "admin123",
			Role:      model.RoleAdmin,
			CreatedAt: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        2,
			Name:      "Regular User",
			Email:     "user@example.com",
			Password:  "user123",
			Role:      model.RoleUser,
			CreatedAt: time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        3,
			Name:      "John Doe",
			Email:     "john@example.com",
			Password:  "demo123",
			Role:      model.RoleUser,
			CreatedAt: time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC),
		},
	}
}

func demoChallenges() []model.Challenge {
	return []model.Challenge{
		{
			ID:             1,
			Question:       "Write a program in Python to print the following pattern for n=5:",
			ExpectedOutput: ExpectedPattern,
			Answer:         "for i in range(1, 6):\n    print('* ' * i)",
			Date:           "2025-09-09",
			Category:       model.CategoryTechnical,
			Type:           model.TypeCoding,
			Difficulty:     "Easy",
			CreatedBy:      "admin@dailychallenge.com",
		},
		{
			ID:       2,
			Question: "Which of the following is a key benefit of writing clean code?",
			Options: []string{
				"A. Slower execution",
				"B. Easier maintenance",
				"C. More bugs",
				"D. Less readability",
			},
			Answer:     "B",
			Date:       "2025-09-09",
			Category:   model.CategoryNonTechnical,
			Type:       model.TypeMCQ,
			Difficulty: "Easy",
			CreatedBy:  "admin@dailychallenge.com",
		},
	}
}

func (s *SeedService) Seed(ctx context.Context) error {
	users, err := s.UserRepo.All(ctx)
	if err != nil {
		return err
	}
	seedUsers := demoUsers()
	if len(users) == 0 {
		if err := s.UserRepo.Save(ctx, seedUsers); err != nil {
			return err
		}
		logger.Log.Info("demo users created")
	}

	challenges, err := s.ChallengeRepo.All(ctx)
	if err != nil {
		return err
	}
	if len(challenges) == 0 {
		if err := s.ChallengeRepo.Save(ctx, demoChallenges()); err != nil {
			return err
		}
		logger.Log.Info("demo challenges created")
	}

	for _, u := range seedUsers {
		progress, err := s.ProgressRepo.Get(ctx, u.ID)
		if err != nil {
			return err
		}
		if progress.LastActivity != nil || len(progress.Submissions) > 0 || progress.TotalScore > 0 {
			continue
		}
		now := time.Now()
		seeded := &model.Progress{
			TotalScore:          s.rng.Intn(400) + 100,
			CompletedChallenges: s.rng.Intn(12) + 3,
			CurrentStreak:       s.rng.Intn(8) + 2,
			LastActivity:        &now,
			Submissions:         []model.Submission{},
		}
		if u.Role == model.RoleAdmin {
			seeded.TotalScore = 500
			seeded.CompletedChallenges = 15
			seeded.CurrentStreak = 12
		}
		if err := s.ProgressRepo.Save(ctx, u.ID, seeded); err != nil {
			return err
		}
	}
	return nil
}
