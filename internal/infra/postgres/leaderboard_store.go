package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"pathfinders-assessment/internal/domain"
)

type leaderboardRow struct {
	bun.BaseModel `bun:"table:leaderboard_entries,alias:lb"`

	ParticipantID    string          `bun:"participant_id,pk"`
	DisplayName      string          `bun:"display_name,notnull"`
	TotalPoints      int             `bun:"total_points,notnull"`
	DominantCategory domain.Category `bun:"dominant_category,notnull"`
	Badges           []string        `bun:"badges,type:jsonb"`
	UpdatedAt        time.Time       `bun:"updated_at,notnull"`
}

// LeaderboardStore persists one unranked entry per participant. Ranks are
// computed on read.
type LeaderboardStore struct {
	db *bun.DB
}

func NewLeaderboardStore(db *bun.DB) *LeaderboardStore {
	return &LeaderboardStore{db: db}
}

func (s *LeaderboardStore) Upsert(ctx context.Context, entry domain.LeaderboardEntry) error {
	row := leaderboardRow{
		ParticipantID:    entry.ParticipantID,
		DisplayName:      entry.DisplayName,
		TotalPoints:      entry.TotalPoints,
		DominantCategory: entry.DominantCategory,
		Badges:           entry.Badges,
		UpdatedAt:        entry.UpdatedAt,
	}
	_, err := s.db.NewInsert().
		Model(&row).
		On("CONFLICT (participant_id) DO UPDATE").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert leaderboard entry: %w", err)
	}
	return nil
}

func (s *LeaderboardStore) List(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	var rows []leaderboardRow
	if err := s.db.NewSelect().Model(&rows).Scan(ctx); err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, domain.LeaderboardEntry{
			ParticipantID:    r.ParticipantID,
			DisplayName:      r.DisplayName,
			TotalPoints:      r.TotalPoints,
			DominantCategory: r.DominantCategory,
			Badges:           r.Badges,
			UpdatedAt:        r.UpdatedAt,
		})
	}
	return entries, nil
}
