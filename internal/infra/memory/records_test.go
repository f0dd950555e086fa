package memory

import (
	"context"
	"errors"
	"testing"

	"pathfinders-assessment/internal/domain"
)

func TestAttemptStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewAttemptStore()

	if _, ok, _ := store.Get(ctx, "u1"); ok {
		t.Fatalf("expected no attempt")
	}
	if err := store.Save(ctx, domain.Attempt{ID: "a1", ParticipantID: "u1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := store.Get(ctx, "u1")
	if err != nil || !ok || got.ID != "a1" {
		t.Fatalf("expected attempt a1, got %+v ok=%v err=%v", got, ok, err)
	}
	if err := store.Delete(ctx, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "u1"); ok {
		t.Fatalf("expected attempt removed")
	}
}

func TestAnswerLogKeepsOneRowPerAttemptQuestion(t *testing.T) {
	ctx := context.Background()
	log := NewAnswerLog()

	if err := log.Create(ctx, "u1", domain.Answer{ID: "x", AttemptID: "a1", QuestionID: "q1", OptionID: "A"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := log.Create(ctx, "u1", domain.Answer{ID: "x", AttemptID: "a1", QuestionID: "q1", OptionID: "A"}); err != nil {
		t.Fatalf("repeated create should be a no-op, got %v", err)
	}
	if err := log.Create(ctx, "u1", domain.Answer{ID: "y", AttemptID: "a2", QuestionID: "q1", OptionID: "B"}); err != nil {
		t.Fatalf("create for retake: %v", err)
	}
	answers, _ := log.List(ctx, "u1")
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(answers))
	}
	if answers[0].OptionID != "A" {
		t.Fatalf("expected first row kept, got %+v", answers[0])
	}
}

func TestProfileStore(t *testing.T) {
	ctx := context.Background()
	store := NewProfileStore()

	if _, err := store.Get(ctx, "u1"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected profile not found, got %v", err)
	}
	_ = store.Save(ctx, domain.Profile{ParticipantID: "u1", TotalPoints: 10})
	_ = store.Save(ctx, domain.Profile{ParticipantID: "u1", TotalPoints: 30})
	p, err := store.Get(ctx, "u1")
	if err != nil || p.TotalPoints != 30 {
		t.Fatalf("expected latest profile, got %+v err=%v", p, err)
	}
}

func TestLeaderboardStoreKeepsOneEntryPerParticipant(t *testing.T) {
	ctx := context.Background()
	store := NewLeaderboardStore(domain.LeaderboardEntry{ParticipantID: "seed", TotalPoints: 5})

	_ = store.Upsert(ctx, domain.LeaderboardEntry{ParticipantID: "u1", TotalPoints: 10, Rank: 7, IsCurrentUser: true})
	_ = store.Upsert(ctx, domain.LeaderboardEntry{ParticipantID: "u1", TotalPoints: 20})

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.ParticipantID == "u1" && (e.TotalPoints != 20 || e.Rank != 0 || e.IsCurrentUser) {
			t.Fatalf("unexpected stored entry %+v", e)
		}
	}
}
