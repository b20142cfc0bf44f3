package service

import (
	"context"
	"math"
	"strings"
	"time"

	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/repository"
	"daily_challenge_backend/internal/util"
)

// NewChallengeInput carries the admin challenge-creation form.
type NewChallengeInput struct {
	Category   model.ChallengeCategory
	Question   string
	Answer     string
	Date       string
	Difficulty string
	Options    []string // required, 4 entries, for non-technical
}

// UserWithProgress joins a user with its progress record for the admin list.
// swagger:model UserWithProgress
type UserWithProgress struct {
	model.User
	TotalScore          int `json:"totalScore"`
	CompletedChallenges int `json:"completedChallenges"`
	CurrentStreak       int `json:"currentStreak"`
}

// StudentReport aggregates one non-admin user's activity.
// swagger:model StudentReport
type StudentReport struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	TotalScore          int    `json:"totalScore"`
	CompletedChallenges int    `json:"completedChallenges"`
	CurrentStreak       int    `json:"currentStreak"`
	SubmissionCount     int    `json:"submissionCount"`
	AverageScore        int    `json:"averageScore"`
}

// AnalyticsStats holds the admin dashboard aggregates. ActiveToday is a
// simulated figure (60% of regular users), not measured activity.
// swagger:model AnalyticsStats
type AnalyticsStats struct {
	TotalUsers      int `json:"totalUsers"`
	AdminUsers      int `json:"adminUsers"`
	RegularUsers    int `json:"regularUsers"`
	ActiveToday     int `json:"activeToday"`
	TotalChallenges int `json:"totalChallenges"`
	CompletionRate  int `json:"completionRate"`
}

type AdminService struct {
	UserRepo      *repository.UserRepository
	ChallengeRepo *repository.ChallengeRepository
	ProgressRepo  *repository.ProgressRepository
	SessionRepo   *repository.SessionRepository
}

func NewAdminService(userRepo *repository.UserRepository, challengeRepo *repository.ChallengeRepository, progressRepo *repository.ProgressRepository, sessionRepo *repository.SessionRepository) *AdminService {
	return &AdminService{
		UserRepo:      userRepo,
		ChallengeRepo: challengeRepo,
		ProgressRepo:  progressRepo,
		SessionRepo:   sessionRepo,
	}
}

// AddChallenge validates and appends a challenge. Non-technical challenges
// need all four options. Uniqueness per date is not enforced; resolution is
// first match wins.
func (s *AdminService) AddChallenge(ctx context.Context, creator *model.User, in NewChallengeInput) (*model.Challenge, error) {
	if in.Question == "" || in.Answer == "" || in.Date == "" {
		return nil, util.ErrValidation
	}
	if in.Category != model.CategoryTechnical && in.Category != model.CategoryNonTechnical {
		return nil, util.ErrValidation
	}

	challenge := &model.Challenge{
		ID:         model.NewID(),
		Question:   in.Question,
		Answer:     in.Answer,
		Date:       in.Date,
		Category:   in.Category,
		Difficulty: in.Difficulty,
		CreatedBy:  creator.Email,
		CreatedAt:  time.Now(),
	}

	if in.Category == model.CategoryNonTechnical {
		if len(in.Options) != 4 {
			return nil, util.ErrValidation
		}
		for _, opt := range in.Options {
			if strings.TrimSpace(opt) == "" {
				return nil, util.ErrValidation
			}
		}
		challenge.Type = model.TypeMCQ
		challenge.Options = in.Options
	} else {
		challenge.Type = model.TypeCoding
		challenge.ExpectedOutput = in.Answer
	}

	if err := s.ChallengeRepo.Add(ctx, challenge); err != nil {
		return nil, err
	}
	return challenge, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]UserWithProgress, error) {
	users, err := s.UserRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]UserWithProgress, 0, len(users))
	for _, u := range users {
		progress, err := s.ProgressRepo.Get(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, UserWithProgress{
			User:                u,
			TotalScore:          progress.TotalScore,
			CompletedChallenges: progress.CompletedChallenges,
			CurrentStreak:       progress.CurrentStreak,
		})
	}
	return out, nil
}

// ChangeUserRole flips one user's role. The confirm flag stands in for the
// interactive confirmation step; without it nothing happens. When the acting
// admin changes their own role the live session follows.
func (s *AdminService) ChangeUserRole(ctx context.Context, actor *model.User, userID int64, newRole model.UserRole, confirm bool) (*model.User, error) {
	if !newRole.Valid() {
		return nil, util.ErrValidation
	}
	if !confirm {
		return nil, util.ErrConfirmRequired
	}

	updated, err := s.UserRepo.UpdateRole(ctx, userID, newRole)
	if err != nil {
		return nil, err
	}

	if actor.ID == userID {
		actor.Role = newRole
		if err := s.SessionRepo.Set(ctx, updated); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

func (s *AdminService) StudentReports(ctx context.Context) ([]StudentReport, error) {
	users, err := s.UserRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	reports := []StudentReport{}
	for _, u := range users {
		if u.Role != model.RoleUser {
			continue
		}
		progress, err := s.ProgressRepo.Get(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		count := len(progress.Submissions)
		avg := 0
		if count > 0 {
			avg = int(math.Round(float64(progress.TotalScore) / float64(count)))
		}
		reports = append(reports, StudentReport{
			ID:                  u.ID,
			Name:                u.Name,
			Email:               u.Email,
			TotalScore:          progress.TotalScore,
			CompletedChallenges: progress.CompletedChallenges,
			CurrentStreak:       progress.CurrentStreak,
			SubmissionCount:     count,
			AverageScore:        avg,
		})
	}
	return reports, nil
}

func (s *AdminService) Analytics(ctx context.Context) (*AnalyticsStats, error) {
	users, err := s.UserRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	challenges, err := s.ChallengeRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	stats := &AnalyticsStats{TotalUsers: len(users), TotalChallenges: len(challenges)}
	for _, u := range users {
		if u.Role == model.RoleAdmin {
			stats.AdminUsers++
		} else {
			stats.RegularUsers++
		}
	}
	stats.ActiveToday = int(float64(stats.RegularUsers) * 0.6)
	if stats.TotalUsers > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.ActiveToday) / float64(stats.TotalUsers) * 100))
	}
	return stats, nil
}
