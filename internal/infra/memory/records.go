package memory

import (
	"context"
	"sync"

	"pathfinders-assessment/internal/domain"
)

// AnswerLog keeps recorded answers per participant. Writing the same
// attempt and question twice keeps the first row.
type AnswerLog struct {
	mu      sync.RWMutex
	answers map[string][]domain.Answer
}

func NewAnswerLog() *AnswerLog {
	return &AnswerLog{answers: make(map[string][]domain.Answer)}
}

func (l *AnswerLog) Create(_ context.Context, participantID string, answer domain.Answer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, a := range l.answers[participantID] {
		if a.AttemptID == answer.AttemptID && a.QuestionID == answer.QuestionID {
			return nil
		}
	}
	l.answers[participantID] = append(l.answers[participantID], answer)
	return nil
}

func (l *AnswerLog) List(_ context.Context, participantID string) ([]domain.Answer, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.Answer(nil), l.answers[participantID]...), nil
}

// ProfileStore keeps the latest profile per participant.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{profiles: make(map[string]domain.Profile)}
}

func (s *ProfileStore) Save(_ context.Context, profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ParticipantID] = profile
	return nil
}

func (s *ProfileStore) Get(_ context.Context, participantID string) (domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[participantID]
	if !ok {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	return profile, nil
}

// LeaderboardStore keeps one unranked entry per participant.
type LeaderboardStore struct {
	mu      sync.RWMutex
	entries map[string]domain.LeaderboardEntry
}

func NewLeaderboardStore(seed ...domain.LeaderboardEntry) *LeaderboardStore {
	s := &LeaderboardStore{entries: make(map[string]domain.LeaderboardEntry, len(seed))}
	for _, e := range seed {
		s.entries[e.ParticipantID] = e
	}
	return s
}

func (s *LeaderboardStore) Upsert(_ context.Context, entry domain.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.Rank = 0
	entry.IsCurrentUser = false
	s.entries[entry.ParticipantID] = entry
	return nil
}

// List returns entries in no particular order; rank them with assessment.Rebuild.
func (s *LeaderboardStore) List(_ context.Context) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LeaderboardEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out, nil
}
