package service

import (
	"context"
	"time"

	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/repository"
)

// DashboardStats backs the dashboard header cards.
// swagger:model DashboardStats
type DashboardStats struct {
	UserName            string `json:"userName"`
	TotalScore          int    `json:"totalScore"`
	CurrentStreak       int    `json:"currentStreak"`
	CompletedChallenges int    `json:"completedChallenges"`
}

// ChallengeIndicators marks which of today's challenges are already done.
// swagger:model ChallengeIndicators
type ChallengeIndicators struct {
	TechnicalCompleted bool `json:"technicalCompleted"`
	MCQCompleted       bool `json:"mcqCompleted"`
}

type DashboardService struct {
	ProgressRepo *repository.ProgressRepository
	Location     *time.Location

	now func() time.Time
}

func NewDashboardService(progressRepo *repository.ProgressRepository, loc *time.Location) *DashboardService {
	return &DashboardService{
		ProgressRepo: progressRepo,
		Location:     loc,
		now:          time.Now,
	}
}

func (s *DashboardService) Stats(ctx context.Context, user *model.User) (*DashboardStats, error) {
	progress, err := s.ProgressRepo.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		UserName:            user.Name,
		TotalScore:          progress.TotalScore,
		CurrentStreak:       progress.CurrentStreak,
		CompletedChallenges: progress.CompletedChallenges,
	}, nil
}

func (s *DashboardService) Indicators(ctx context.Context, user *model.User) (*ChallengeIndicators, error) {
	progress, err := s.ProgressRepo.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	indicators := &ChallengeIndicators{}
	for _, sub := range progress.SubmissionsOn(s.now(), s.Location) {
		switch sub.Type {
		case model.SubmissionTechnical:
			indicators.TechnicalCompleted = true
		case model.SubmissionMCQ:
			indicators.MCQCompleted = true
		}
	}
	return indicators, nil
}
