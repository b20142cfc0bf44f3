package repository

import (
	"context"
	"encoding/json"

	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/store"
)

type ProgressRepository struct {
	Store store.Store
}

func NewProgressRepository(s store.Store) *ProgressRepository {
	return &ProgressRepository{Store: s}
}

// Get never fails on a missing or corrupt record: callers always receive a
// usable progress structure with zeroed fields.
func (r *ProgressRepository) Get(ctx context.Context, userID int64) (*model.Progress, error) {
	raw, ok, err := r.Store.Get(ctx, store.ProgressKey(userID))
	if err != nil {
		return nil, err
	}
	empty := &model.Progress{Submissions: []model.Submission{}}
	if !ok {
		return empty, nil
	}
	var p model.Progress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return empty, nil
	}
	if p.Submissions == nil {
		p.Submissions = []model.Submission{}
	}
	return &p, nil
}

func (r *ProgressRepository) Save(ctx context.Context, userID int64, p *model.Progress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.Store.Set(ctx, store.ProgressKey(userID), string(raw))
}
