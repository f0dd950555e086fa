package app

import (
	"context"

	"pathfinders-assessment/internal/assessment"
	"pathfinders-assessment/internal/domain"
)

// BankRepository loads validated question banks (from cache/backing store).
type BankRepository interface {
	GetBank(ctx context.Context, bankID string) (*assessment.Bank, error)
}

// AttemptRepository stores in-progress attempts keyed by participant.
type AttemptRepository interface {
	Get(ctx context.Context, participantID string) (domain.Attempt, bool, error)
	Save(ctx context.Context, attempt domain.Attempt) error
	Delete(ctx context.Context, participantID string) error
}

// AnswerLog is the append-only audit trail of recorded answers.
type AnswerLog interface {
	Create(ctx context.Context, participantID string, answer domain.Answer) error
	List(ctx context.Context, participantID string) ([]domain.Answer, error)
}

// ProfileRepository stores completion profiles; Save replaces any earlier profile.
type ProfileRepository interface {
	Save(ctx context.Context, profile domain.Profile) error
	Get(ctx context.Context, participantID string) (domain.Profile, error)
}

// LeaderboardRepository persists unranked leaderboard entries.
type LeaderboardRepository interface {
	Upsert(ctx context.Context, entry domain.LeaderboardEntry) error
	List(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

// CareerAdvisor suggests career interests for a completed profile.
type CareerAdvisor interface {
	Suggest(ctx context.Context, dominant domain.Category, totals map[domain.Category]int) ([]string, error)
}
