package memory

import (
	"context"
	"sync"

	"pathfinders-assessment/internal/domain"
)

// AttemptStore is an in-memory implementation of app.AttemptRepository.
type AttemptStore struct {
	mu       sync.RWMutex
	attempts map[string]domain.Attempt
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{
		attempts: make(map[string]domain.Attempt),
	}
}

func (s *AttemptStore) Get(_ context.Context, participantID string) (domain.Attempt, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	attempt, ok := s.attempts[participantID]
	return attempt, ok, nil
}

func (s *AttemptStore) Save(_ context.Context, attempt domain.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[attempt.ParticipantID] = attempt
	return nil
}

func (s *AttemptStore) Delete(_ context.Context, participantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, participantID)
	return nil
}
