package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pathfinders-assessment/internal/domain"
)

// AttemptStore keeps in-progress attempts in Redis so any instance can
// continue a participant's quiz. Abandoned attempts expire after ttl.
type AttemptStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAttemptStore(client *redis.Client, ttl time.Duration) *AttemptStore {
	return &AttemptStore{client: client, ttl: ttl}
}

func (s *AttemptStore) Get(ctx context.Context, participantID string) (domain.Attempt, bool, error) {
	raw, err := s.client.Get(ctx, s.key(participantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Attempt{}, false, nil
	}
	if err != nil {
		return domain.Attempt{}, false, fmt.Errorf("get attempt: %w", err)
	}
	var attempt domain.Attempt
	if err := json.Unmarshal(raw, &attempt); err != nil {
		return domain.Attempt{}, false, fmt.Errorf("decode attempt: %w", err)
	}
	return attempt, true, nil
}

func (s *AttemptStore) Save(ctx context.Context, attempt domain.Attempt) error {
	payload, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("encode attempt: %w", err)
	}
	if err := s.client.Set(ctx, s.key(attempt.ParticipantID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (s *AttemptStore) Delete(ctx context.Context, participantID string) error {
	return s.client.Del(ctx, s.key(participantID)).Err()
}

func (s *AttemptStore) key(participantID string) string {
	return "assessment:attempt:" + participantID
}
