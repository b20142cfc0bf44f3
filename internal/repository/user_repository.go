package repository

import (
	"context"
	"encoding/json"

	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/store"
	"daily_challenge_backend/internal/util"
)

// UserRepository reads and rewrites the whole user list blob. A blob that
// fails to parse is treated as an empty collection.
type UserRepository struct {
	Store store.Store
}

func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{Store: s}
}

func (r *UserRepository) All(ctx context.Context) ([]model.User, error) {
	raw, ok, err := r.Store.Get(ctx, store.KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.User{}, nil
	}
	var users []model.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return []model.User{}, nil
	}
	return users, nil
}

func (r *UserRepository) Save(ctx context.Context, users []model.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.Store.Set(ctx, store.KeyUsers, string(raw))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, util.ErrUserNotFound
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, util.ErrUserNotFound
}

func (r *UserRepository) Add(ctx context.Context, user *model.User) error {
	users, err := r.All(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	return r.Save(ctx, users)
}

// UpdateRole mutates exactly one user's role in place and rewrites the
// collection. The returned user is the post-update record.
func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role model.UserRole) (*model.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			users[i].Role = role
			if err := r.Save(ctx, users); err != nil {
				return nil, err
			}
			return &users[i], nil
		}
	}
	return nil, util.ErrUserNotFound
}
