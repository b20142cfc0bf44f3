package service

import (
	"context"
	"regexp"
	"time"

	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/repository"
	"daily_challenge_backend/internal/util"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	SessionRepo  *repository.SessionRepository
}

func NewAuthService(userRepo *repository.UserRepository, progressRepo *repository.ProgressRepository, sessionRepo *repository.SessionRepository) *AuthService {
	return &AuthService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		SessionRepo:  sessionRepo,
	}
}

// Login matches email and password exactly against the stored user list.
// Credentials are compared in plaintext; that is the storage contract, not
// an accident. On success the user becomes the persisted session. On
// failure the session is left untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, util.ErrValidation
	}

	users, err := s.UserRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			user := users[i]
			if err := s.SessionRepo.Set(ctx, &user); err != nil {
				return nil, err
			}
			return &user, nil
		}
	}
	return nil, util.ErrInvalidCredentials
}

// Signup creates the user and an empty progress record. It does not log the
// new user in; callers go through Login afterwards.
func (s *AuthService) Signup(ctx context.Context, name, email, password string, role model.UserRole) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, util.ErrValidation
	}
	if !emailPattern.MatchString(email) {
		return nil, util.ErrValidation
	}
	if len(password) < 6 {
		return nil, util.ErrValidation
	}
	if !role.Valid() {
		role = model.RoleUser
	}

	if _, err := s.UserRepo.FindByEmail(ctx, email); err == nil {
		return nil, util.ErrEmailRegistered
	}

	user := &model.User{
		ID:        model.NewID(),
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := s.UserRepo.Add(ctx, user); err != nil {
		return nil, err
	}

	empty := &model.Progress{Submissions: []model.Submission{}}
	if err := s.ProgressRepo.Save(ctx, user.ID, empty); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.SessionRepo.Clear(ctx)
}

func (s *AuthService) CurrentUser(ctx context.Context) (*model.User, error) {
	return s.SessionRepo.Current(ctx)
}
