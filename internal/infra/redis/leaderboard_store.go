package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"pathfinders-assessment/internal/domain"
)

const leaderboardKey = "assessment:leaderboard"

// LeaderboardStore keeps one JSON entry per participant in a single hash:
// HSET assessment:leaderboard {participantID} {json}
// Ranking happens in the application on read.
type LeaderboardStore struct {
	client *redis.Client
}

func NewLeaderboardStore(client *redis.Client) *LeaderboardStore {
	return &LeaderboardStore{client: client}
}

func (s *LeaderboardStore) Upsert(ctx context.Context, entry domain.LeaderboardEntry) error {
	entry.Rank = 0
	entry.IsCurrentUser = false
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}
	if err := s.client.HSet(ctx, leaderboardKey, entry.ParticipantID, payload).Err(); err != nil {
		return fmt.Errorf("upsert entry: %w", err)
	}
	return nil
}

func (s *LeaderboardStore) List(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	raw, err := s.client.HGetAll(ctx, leaderboardKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	entries := make([]domain.LeaderboardEntry, 0, len(raw))
	for participantID, value := range raw {
		var entry domain.LeaderboardEntry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			return nil, fmt.Errorf("decode entry %s: %w", participantID, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
