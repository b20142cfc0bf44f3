package repository

import (
	"context"
	"encoding/json"

	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/store"
)

type ChallengeRepository struct {
	Store store.Store
}

func NewChallengeRepository(s store.Store) *ChallengeRepository {
	return &ChallengeRepository{Store: s}
}

func (r *ChallengeRepository) All(ctx context.Context) ([]model.Challenge, error) {
	raw, ok, err := r.Store.Get(ctx, store.KeyChallenges)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Challenge{}, nil
	}
	var challenges []model.Challenge
	if err := json.Unmarshal([]byte(raw), &challenges); err != nil {
		return []model.Challenge{}, nil
	}
	return challenges, nil
}

func (r *ChallengeRepository) Save(ctx context.Context, challenges []model.Challenge) error {
	raw, err := json.Marshal(challenges)
	if err != nil {
		return err
	}
	return r.Store.Set(ctx, store.KeyChallenges, string(raw))
}

func (r *ChallengeRepository) Add(ctx context.Context, challenge *model.Challenge) error {
	challenges, err := r.All(ctx)
	if err != nil {
		return err
	}
	challenges = append(challenges, *challenge)
	return r.Save(ctx, challenges)
}
