package service

import (
	"context"

	"daily_challenge_backend/internal/repository"
	"daily_challenge_backend/internal/util"
)

type Page string

const (
	PageLogin        Page = "login"
	PageSignup       Page = "signup"
	PageDashboard    Page = "dashboard"
	PageChallenges   Page = "challenges"
	PageScore        Page = "score"
	PageAdmin        Page = "admin"
	PageAccessDenied Page = "accessDenied"
)

var knownPages = map[Page]bool{
	PageLogin:        true,
	PageSignup:       true,
	PageDashboard:    true,
	PageChallenges:   true,
	PageScore:        true,
	PageAdmin:        true,
	PageAccessDenied: true,
}

// PageView tells the client what to render for a requested page: the page
// itself (or a redirect target), whether the navigation bar is visible, and
// the role-conditional admin controls.
// swagger:model PageView
type PageView struct {
	Page          Page   `json:"page"`
	Redirect      Page   `json:"redirect,omitempty"`
	ShowNavbar    bool   `json:"showNavbar"`
	ShowAdminLink bool   `json:"showAdminLink"`
	ShowAdminCard bool   `json:"showAdminCard"`
	UserName      string `json:"userName,omitempty"`
}

type NavigationService struct {
	SessionRepo *repository.SessionRepository
}

func NewNavigationService(sessionRepo *repository.SessionRepository) *NavigationService {
	return &NavigationService{SessionRepo: sessionRepo}
}

// Resolve applies the page visibility rules: login and signup always hide
// the navbar; every other page requires a session and redirects to login
// without one; the admin page additionally requires the admin role and
// lands on accessDenied otherwise.
func (s *NavigationService) Resolve(ctx context.Context, name string) (*PageView, error) {
	page := Page(name)
	if !knownPages[page] {
		return nil, util.ErrPageNotFound
	}

	if page == PageLogin || page == PageSignup {
		return &PageView{Page: page}, nil
	}

	user, err := s.SessionRepo.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &PageView{Page: PageLogin, Redirect: PageLogin}, nil
	}

	if page == PageAdmin && !user.IsAdmin() {
		return &PageView{
			Page:       PageAccessDenied,
			Redirect:   PageAccessDenied,
			ShowNavbar: true,
			UserName:   user.Name,
		}, nil
	}

	return &PageView{
		Page:          page,
		ShowNavbar:    true,
		ShowAdminLink: user.IsAdmin(),
		ShowAdminCard: user.IsAdmin(),
		UserName:      user.Name,
	}, nil
}
