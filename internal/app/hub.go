package app

import (
	"sync"

	"pathfinders-assessment/internal/domain"
)

// Hub fans leaderboard snapshots out to subscribers.
type Hub struct {
	mu          sync.Mutex
	latest      *domain.Leaderboard
	subscribers map[chan domain.Leaderboard]struct{}
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[chan domain.Leaderboard]struct{})}
}

// Subscribe returns a channel of leaderboard updates. The latest snapshot, if
// any, is delivered first. The caller must invoke cancel to avoid leaks.
func (h *Hub) Subscribe() (<-chan domain.Leaderboard, func()) {
	ch := make(chan domain.Leaderboard, 8)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	if h.latest != nil {
		ch <- *h.latest
	}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers lb to every subscriber. Slow subscribers lose their oldest
// pending update instead of blocking the publisher.
func (h *Hub) Publish(lb domain.Leaderboard) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = &lb
	for ch := range h.subscribers {
		select {
		case ch <- lb:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- lb
		}
	}
}

// Len reports the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

func (h *Hub) latestMissing() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest == nil
}
