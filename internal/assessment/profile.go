package assessment

import (
	"time"

	"pathfinders-assessment/internal/domain"
)

// BuildProfile derives the completion profile of a finished attempt.
func BuildProfile(bank *Bank, attempt domain.Attempt, rules BadgeRules, now time.Time) (domain.Profile, error) {
	dominant, err := Classify(attempt.Score.CategoryTotals)
	if err != nil {
		return domain.Profile{}, err
	}
	totals := make(map[domain.Category]int, len(attempt.Score.CategoryTotals))
	for c, v := range attempt.Score.CategoryTotals {
		totals[c] = v
	}
	return domain.Profile{
		ParticipantID:    attempt.ParticipantID,
		DisplayName:      attempt.DisplayName,
		BankID:           attempt.BankID,
		TotalPoints:      attempt.Score.TotalPoints,
		DominantCategory: dominant,
		CategoryTotals:   totals,
		Badges:           rules.Assign(attempt.Score.TotalPoints, Complete(bank, attempt)),
		CompletedAt:      now,
	}, nil
}

// EntryFromProfile builds the unranked leaderboard entry for a profile.
func EntryFromProfile(p domain.Profile) domain.LeaderboardEntry {
	return domain.LeaderboardEntry{
		ParticipantID:    p.ParticipantID,
		DisplayName:      p.DisplayName,
		TotalPoints:      p.TotalPoints,
		DominantCategory: p.DominantCategory,
		Badges:           append([]string(nil), p.Badges...),
		UpdatedAt:        p.CompletedAt,
	}
}
