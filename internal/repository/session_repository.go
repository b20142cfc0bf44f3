package repository

import (
	"context"
	"encoding/json"

	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/store"
)

// SessionRepository persists the single authenticated user so a session
// survives a restart. Exactly one session exists per running instance;
// concurrent logins last-write-win.
type SessionRepository struct {
	Store store.Store
}

func NewSessionRepository(s store.Store) *SessionRepository {
	return &SessionRepository{Store: s}
}

// Current returns the persisted session user, or nil when unauthenticated.
// A corrupt session record is cleared rather than surfaced.
func (r *SessionRepository) Current(ctx context.Context) (*model.User, error) {
	raw, ok, err := r.Store.Get(ctx, store.KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		r.Store.Delete(ctx, store.KeyCurrentUser)
		return nil, nil
	}
	return &user, nil
}

func (r *SessionRepository) Set(ctx context.Context, user *model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.Store.Set(ctx, store.KeyCurrentUser, string(raw))
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.Store.Delete(ctx, store.KeyCurrentUser)
}
