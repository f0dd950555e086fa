package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"pathfinders-assessment/internal/domain"
)

type profileRow struct {
	bun.BaseModel `bun:"table:profiles,alias:p"`

	ParticipantID    string                  `bun:"participant_id,pk"`
	DisplayName      string                  `bun:"display_name,notnull"`
	BankID           string                  `bun:"bank_id,notnull"`
	TotalPoints      int                     `bun:"total_points,notnull"`
	DominantCategory domain.Category         `bun:"dominant_category,notnull"`
	CategoryTotals   map[domain.Category]int `bun:"category_totals,type:jsonb,notnull"`
	Badges           []string                `bun:"badges,type:jsonb,notnull"`
	CareerInterests  []string                `bun:"career_interests,type:jsonb"`
	CompletedAt      time.Time               `bun:"completed_at,notnull"`
}

func profileToRow(p domain.Profile) profileRow {
	badges := p.Badges
	if badges == nil {
		badges = []string{}
	}
	return profileRow{
		ParticipantID:    p.ParticipantID,
		DisplayName:      p.DisplayName,
		BankID:           p.BankID,
		TotalPoints:      p.TotalPoints,
		DominantCategory: p.DominantCategory,
		CategoryTotals:   p.CategoryTotals,
		Badges:           badges,
		CareerInterests:  p.CareerInterests,
		CompletedAt:      p.CompletedAt,
	}
}

func (r profileRow) profile() domain.Profile {
	return domain.Profile{
		ParticipantID:    r.ParticipantID,
		DisplayName:      r.DisplayName,
		BankID:           r.BankID,
		TotalPoints:      r.TotalPoints,
		DominantCategory: r.DominantCategory,
		CategoryTotals:   r.CategoryTotals,
		Badges:           r.Badges,
		CareerInterests:  r.CareerInterests,
		CompletedAt:      r.CompletedAt,
	}
}

// ProfileStore keeps the latest profile per participant.
type ProfileStore struct {
	db *bun.DB
}

func NewProfileStore(db *bun.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) Save(ctx context.Context, profile domain.Profile) error {
	row := profileToRow(profile)
	_, err := s.db.NewInsert().
		Model(&row).
		On("CONFLICT (participant_id) DO UPDATE").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *ProfileStore) Get(ctx context.Context, participantID string) (domain.Profile, error) {
	var row profileRow
	err := s.db.NewSelect().Model(&row).Where("participant_id = ?", participantID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return row.profile(), nil
}
