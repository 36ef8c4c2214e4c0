package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
)

const locationKeyPrefix = "trainer:location:"

// TrainerLocationStore keeps one ephemeral position per trainer. The
// redis key TTL mirrors the entry's ExpiresAt, so an expired position
// simply vanishes from the read path.
type TrainerLocationStore struct {
	client *goredis.Client
}

func NewTrainerLocationStore(r *Redis) *TrainerLocationStore {
	return &TrainerLocationStore{client: r.Client}
}

func (s *TrainerLocationStore) Upsert(ctx context.Context, loc *domain.TrainerLocation) error {
	b, err := json.Marshal(loc)
	if err != nil {
		return err
	}

	ttl := time.Until(loc.ExpiresAt)
	if ttl <= 0 {
		// Upserting an already-expired entry is a delete.
		return s.client.Del(ctx, locationKey(loc.TrainerID)).Err()
	}

	return s.client.Set(ctx, locationKey(loc.TrainerID), b, ttl).Err()
}

// Get returns (nil, nil) when no unexpired entry exists.
func (s *TrainerLocationStore) Get(ctx context.Context, trainerID uuid.UUID) (*domain.TrainerLocation, error) {
	data, err := s.client.Get(ctx, locationKey(trainerID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var loc domain.TrainerLocation
	if err := json.Unmarshal(data, &loc); err != nil {
		return nil, err
	}

	return &loc, nil
}

func (s *TrainerLocationStore) Delete(ctx context.Context, trainerID uuid.UUID) error {
	return s.client.Del(ctx, locationKey(trainerID)).Err()
}

func locationKey(trainerID uuid.UUID) string {
	return locationKeyPrefix + trainerID.String()
}
