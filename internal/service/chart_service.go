package service

import (
	"daily_challenge_backend/internal/model"
)

// ChartDataset and ChartData mirror the payload shape the charting frontend
// consumes directly.
// swagger:model ChartDataset
type ChartDataset struct {
	Label string `json:"label,omitempty"`
	Data  []int  `json:"data"`
}

// swagger:model ChartData
type ChartData struct {
	Type     string         `json:"type"` // line | doughnut | bar
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ActivityItem is one row of the recent-activity list.
// swagger:model ActivityItem
type ActivityItem struct {
	Type      model.SubmissionType `json:"type"`
	IsCorrect bool                 `json:"isCorrect"`
	Points    int                  `json:"points"`
	Date      string               `json:"date"`
}

// The progress page renders demo series split by role rather than the
// user's real submission history; the arrays below are that fixture data.
var (
	scoreDates = []string{"Sep 1", "Sep 2", "Sep 3", "Sep 4", "Sep 5", "Sep 6", "Sep 7", "Sep 8", "Sep 9", "Sep 10", "Sep 11", "Sep 12", "Sep 13"}

	adminScoreSeries = []int{0, 20, 45, 70, 100, 135, 170, 210, 250, 290, 330, 380, 430, 500}
	userScoreSeries  = []int{0, 10, 30, 50, 75, 100, 130, 160, 190, 220, 250, 280, 325}

	adminActivity = []ActivityItem{
		{Type: model.SubmissionTechnical, IsCorrect: true, Points: 20, Date: "Sep 9, 2025"},
		{Type: model.SubmissionMCQ, IsCorrect: true, Points: 10, Date: "Sep 8, 2025"},
		{Type: model.SubmissionTechnical, IsCorrect: true, Points: 20, Date: "Sep 7, 2025"},
		{Type: model.SubmissionMCQ, IsCorrect: true, Points: 10, Date: "Sep 6, 2025"},
		{Type: model.SubmissionTechnical, IsCorrect: true, Points: 20, Date: "Sep 5, 2025"},
	}
	userActivity = []ActivityItem{
		{Type: model.SubmissionTechnical, IsCorrect: true, Points: 20, Date: "Sep 9, 2025"},
		{Type: model.SubmissionMCQ, IsCorrect: true, Points: 10, Date: "Sep 8, 2025"},
		{Type: model.SubmissionTechnical, IsCorrect: false, Points: 5, Date: "Sep 7, 2025"},
		{Type: model.SubmissionMCQ, IsCorrect: true, Points: 10, Date: "Sep 6, 2025"},
		{Type: model.SubmissionTechnical, IsCorrect: true, Points: 20, Date: "Sep 5, 2025"},
	}
)

// ChartService derives presentation payloads from other components' state.
// It owns no state of its own.
type ChartService struct{}

func NewChartService() *ChartService {
	return &ChartService{}
}

func (s *ChartService) ScoreSeries(user *model.User) *ChartData {
	data := userScoreSeries
	if user.IsAdmin() {
		data = adminScoreSeries
	}
	return &ChartData{
		Type:     "line",
		Labels:   scoreDates,
		Datasets: []ChartDataset{{Label: "Total Score", Data: data}},
	}
}

func (s *ChartService) Distribution(user *model.User) *ChartData {
	techCount, mcqCount := 6, 4
	if user.IsAdmin() {
		techCount, mcqCount = 8, 7
	}
	return &ChartData{
		Type:     "doughnut",
		Labels:   []string{"Technical Challenges", "MCQ Challenges"},
		Datasets: []ChartDataset{{Data: []int{techCount, mcqCount}}},
	}
}

func (s *ChartService) RecentActivity(user *model.User) []ActivityItem {
	if user.IsAdmin() {
		return adminActivity
	}
	return userActivity
}

// SystemChart renders the admin analytics figures as a bar chart payload.
func (s *ChartService) SystemChart(stats *AnalyticsStats) *ChartData {
	return &ChartData{
		Type:   "bar",
		Labels: []string{"Admin Users", "Regular Users", "Active Today", "Total Challenges"},
		Datasets: []ChartDataset{{
			Label: "System Statistics",
			Data:  []int{stats.AdminUsers, stats.RegularUsers, stats.ActiveToday, stats.TotalChallenges},
		}},
	}
}
