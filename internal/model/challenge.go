package model

import "time"

type ChallengeCategory string

const (
	CategoryTechnical    ChallengeCategory = "technical"
	CategoryNonTechnical ChallengeCategory = "non-technical"
)

type ChallengeType string

const (
	TypeCoding ChallengeType = "coding"
	TypeMCQ    ChallengeType = "mcq"
)

// Challenge is immutable once created. At most one challenge per category is
// active on a given calendar date; the first match in stored order wins.
// swagger:model Challenge
type Challenge struct {
	ID             int64             `json:"id"`
	Question       string            `json:"question"`
	Answer         string            `json:"answer"`
	Options        []string          `json:"options,omitempty"` // present iff mcq, always 4 entries
	ExpectedOutput string            `json:"expectedOutput,omitempty"`
	Date           string            `json:"date"` // YYYY-MM-DD
	Category       ChallengeCategory `json:"category"`
	Type           ChallengeType     `json:"type"`
	Difficulty     string            `json:"difficulty,omitempty"`
	CreatedBy      string            `json:"createdBy"`
	CreatedAt      time.Time         `json:"createdAt"`
}
