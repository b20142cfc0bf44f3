package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/repository"
	"daily_challenge_backend/internal/util"
	"daily_challenge_backend/pkg/monitoring"
)

const (
	mcqPoints         = 10
	codeCorrectPoints = 20
	codeEffortPoints  = 5
)

// SubmissionResult is what the client renders after a submission.
// swagger:model SubmissionResult
type SubmissionResult struct {
	IsCorrect     bool   `json:"isCorrect"`
	Points        int    `json:"points"`
	TotalScore    int    `json:"totalScore"`
	CorrectAnswer string `json:"correctAnswer,omitempty"`
	Output        string `json:"output,omitempty"`
	Message       string `json:"message"`
}

type ChallengeService struct {
	ChallengeRepo *repository.ChallengeRepository
	ProgressRepo  *repository.ProgressRepository
	Runner        *CodeRunner
	Location      *time.Location

	now func() time.Time
}

func NewChallengeService(challengeRepo *repository.ChallengeRepository, progressRepo *repository.ProgressRepository, runner *CodeRunner, loc *time.Location) *ChallengeService {
	return &ChallengeService{
		ChallengeRepo: challengeRepo,
		ProgressRepo:  progressRepo,
		Runner:        runner,
		Location:      loc,
		now:           time.Now,
	}
}

// Today returns the first stored challenge of the category dated on the
// current calendar day. First match wins; a later challenge for the same
// date is shadowed.
func (s *ChallengeService) Today(ctx context.Context, category model.ChallengeCategory) (*model.Challenge, error) {
	challenges, err := s.ChallengeRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	today := s.now()
	for i := range challenges {
		if challenges[i].Category != category {
			continue
		}
		day := util.ParseDay(challenges[i].Date, s.Location)
		if !day.IsZero() && util.SameDay(day, today, s.Location) {
			return &challenges[i], nil
		}
	}
	return nil, util.ErrNoChallengeToday
}

// SubmitMCQ scores a multiple-choice answer against today's non-technical
// challenge. A second submission for the same challenge on the same day is
// rejected. The first submission of the day, in either category, bumps the
// completed count and the streak.
func (s *ChallengeService) SubmitMCQ(ctx context.Context, user *model.User, selected string) (*SubmissionResult, error) {
	if strings.TrimSpace(selected) == "" {
		return nil, util.ErrValidation
	}

	challenge, err := s.Today(ctx, model.CategoryNonTechnical)
	if err != nil {
		return nil, err
	}

	progress, err := s.ProgressRepo.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	for _, sub := range progress.Submissions {
		if sub.ChallengeID == challenge.ID && util.SameDay(sub.SubmittedAt, today, s.Location) {
			return nil, util.ErrAlreadySubmitted
		}
	}

	isCorrect := selected == challenge.Answer
	points := 0
	if isCorrect {
		points = mcqPoints
	}

	progress.TotalScore += points
	progress.Submissions = append(progress.Submissions, model.Submission{
		ChallengeID: challenge.ID,
		Type:        model.SubmissionMCQ,
		Answer:      selected,
		IsCorrect:   isCorrect,
		Points:      points,
		SubmittedAt: today,
	})

	if len(progress.SubmissionsOn(today, s.Location)) == 1 {
		progress.CompletedChallenges++
		progress.CurrentStreak++
	}
	progress.LastActivity = &today

	if err := s.ProgressRepo.Save(ctx, user.ID, progress); err != nil {
		return nil, err
	}

	monitoring.ObserveSubmission(string(model.SubmissionMCQ), isCorrect)

	result := &SubmissionResult{
		IsCorrect:  isCorrect,
		Points:     points,
		TotalScore: progress.TotalScore,
	}
	if isCorrect {
		result.Message = "Excellent! That's the correct answer. You earned 10 points!"
	} else {
		result.CorrectAnswer = challenge.Answer
		result.Message = fmt.Sprintf("Not quite right. The correct answer is %s. Keep learning!", challenge.Answer)
	}
	return result, nil
}

// SubmitCode runs the mock runner over the source and scores the submission
// against the fixed expected pattern. Unlike the MCQ path there is no
// duplicate-submission guard, and the completed count and streak are not
// touched; both asymmetries are long-standing documented behavior.
func (s *ChallengeService) SubmitCode(ctx context.Context, user *model.User, code string) (*SubmissionResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, util.ErrValidation
	}

	challenge, err := s.Today(ctx, model.CategoryTechnical)
	if err != nil {
		return nil, err
	}

	progress, err := s.ProgressRepo.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	output := s.Runner.Run(code)
	isCorrect := output == ExpectedPattern
	points := codeEffortPoints
	if isCorrect {
		points = codeCorrectPoints
	}

	today := s.now()
	progress.TotalScore += points
	progress.Submissions = append(progress.Submissions, model.Submission{
		ChallengeID: challenge.ID,
		Type:        model.SubmissionTechnical,
		Code:        code,
		Output:      output,
		IsCorrect:   isCorrect,
		Points:      points,
		SubmittedAt: today,
	})
	progress.LastActivity = &today

	if err := s.ProgressRepo.Save(ctx, user.ID, progress); err != nil {
		return nil, err
	}

	monitoring.ObserveSubmission(string(model.SubmissionTechnical), isCorrect)

	result := &SubmissionResult{
		IsCorrect:  isCorrect,
		Points:     points,
		TotalScore: progress.TotalScore,
		Output:     output,
	}
	if isCorrect {
		result.Message = fmt.Sprintf("Outstanding work! Your code produces the perfect pattern. You earned %d points!", points)
	} else {
		result.Message = fmt.Sprintf("Good effort! Your code runs but doesn't match the expected pattern exactly. You earned %d points for trying. Keep practicing!", points)
	}
	return result, nil
}

// RunCode is the dry-run path behind the compiler page; nothing is recorded.
func (s *ChallengeService) RunCode(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", util.ErrValidation
	}
	return s.Runner.Run(code), nil
}
