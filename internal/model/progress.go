package model

import "time"

type SubmissionType string

const (
	SubmissionMCQ       SubmissionType = "mcq"
	SubmissionTechnical SubmissionType = "technical"
)

// Submission is immutable once appended to a progress record.
// swagger:model Submission
type Submission struct {
	ChallengeID int64          `json:"challengeId"`
	Type        SubmissionType `json:"type"`
	Answer      string         `json:"answer,omitempty"`
	Code        string         `json:"code,omitempty"`
	Output      string         `json:"output,omitempty"`
	IsCorrect   bool           `json:"isCorrect"`
	Points      int            `json:"points"`
	SubmittedAt time.Time      `json:"submittedAt"`
}

// Progress accumulates a user's score, streak and submission history.
// One record exists per user, keyed by user ID in the store.
// swagger:model Progress
type Progress struct {
	TotalScore          int          `json:"totalScore"`
	CompletedChallenges int          `json:"completedChallenges"`
	CurrentStreak       int          `json:"currentStreak"`
	LastActivity        *time.Time   `json:"lastActivity"`
	Submissions         []Submission `json:"submissions"`
}

// SubmissionsOn returns the submissions made on the given calendar day.
func (p *Progress) SubmissionsOn(day time.Time, loc *time.Location) []Submission {
	var out []Submission
	y, m, d := day.In(loc).Date()
	for _, s := range p.Submissions {
		sy, sm, sd := s.SubmittedAt.In(loc).Date()
		if sy == y && sm == m && sd == d {
			out = append(out, s)
		}
	}
	return out
}
