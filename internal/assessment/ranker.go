package assessment

import (
	"fmt"
	"sort"

	"pathfinders-assessment/internal/domain"
)

// Rebuild returns a freshly ranked copy of entries. When upsert is non-nil it
// replaces any entry with the same participant ID. Order is TotalPoints
// descending, then ParticipantID ascending; Rank is position + 1.
func Rebuild(entries []domain.LeaderboardEntry, upsert *domain.LeaderboardEntry) ([]domain.LeaderboardEntry, error) {
	seen := make(map[string]struct{}, len(entries))
	out := make([]domain.LeaderboardEntry, 0, len(entries)+1)
	for _, e := range entries {
		if _, dup := seen[e.ParticipantID]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateParticipant, e.ParticipantID)
		}
		seen[e.ParticipantID] = struct{}{}
		if upsert != nil && e.ParticipantID == upsert.ParticipantID {
			continue
		}
		out = append(out, cloneEntry(e))
	}
	if upsert != nil {
		out = append(out, cloneEntry(*upsert))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].ParticipantID < out[j].ParticipantID
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}

func cloneEntry(e domain.LeaderboardEntry) domain.LeaderboardEntry {
	if e.Badges != nil {
		e.Badges = append([]string(nil), e.Badges...)
	}
	return e
}

// MarkCurrent returns a copy of entries with IsCurrentUser set only on participantID.
func MarkCurrent(entries []domain.LeaderboardEntry, participantID string) []domain.LeaderboardEntry {
	out := make([]domain.LeaderboardEntry, len(entries))
	for i, e := range entries {
		e = cloneEntry(e)
		e.IsCurrentUser = participantID != "" && e.ParticipantID == participantID
		out[i] = e
	}
	return out
}

// Find returns the entry for participantID.
func Find(entries []domain.LeaderboardEntry, participantID string) (domain.LeaderboardEntry, bool) {
	for _, e := range entries {
		if e.ParticipantID == participantID {
			return cloneEntry(e), true
		}
	}
	return domain.LeaderboardEntry{}, false
}

// Podium returns the top three in display order: second, first, third.
// Missing places are omitted.
func Podium(ranked []domain.LeaderboardEntry) []domain.LeaderboardEntry {
	podium := make([]domain.LeaderboardEntry, 0, 3)
	for _, pos := range []int{1, 0, 2} {
		if pos < len(ranked) {
			podium = append(podium, cloneEntry(ranked[pos]))
		}
	}
	return podium
}

// NextGoal returns the smallest goal strictly above points.
func NextGoal(points int, goals []int) (int, bool) {
	best, found := 0, false
	for _, g := range goals {
		if g > points && (!found || g < best) {
			best, found = g, true
		}
	}
	return best, found
}
