package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"pathfinders-assessment/internal/assessment"
	"pathfinders-assessment/internal/domain"
	"pathfinders-assessment/internal/infra/memory"
)

func TestBankRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{BankLoader: memory.NewStaticBankLoader(assessment.DefaultBank())}
	repo := NewBankRepository(client, loader, time.Minute)

	bank, err := repo.GetBank(context.Background(), assessment.DefaultBankID)
	if err != nil {
		t.Fatalf("get bank: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if !mr.Exists("assessment:bank:" + assessment.DefaultBankID) {
		t.Fatalf("expected bank cached in redis")
	}
	if ttl := mr.TTL("assessment:bank:" + assessment.DefaultBankID); ttl < time.Minute || ttl > time.Minute+6*time.Second {
		t.Fatalf("unexpected ttl %v", ttl)
	}

	// Second call should hit cache, loader not incremented.
	cached, err := repo.GetBank(context.Background(), assessment.DefaultBankID)
	if err != nil {
		t.Fatalf("get bank 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
	if cached.Len() != bank.Len() {
		t.Fatalf("cached bank has %d questions, want %d", cached.Len(), bank.Len())
	}
	q, _ := cached.Question("creativity")
	if len(q.Options) != 4 || q.Options[0].ID != "A" {
		t.Fatalf("unexpected cached question %+v", q)
	}
}

func TestBankRepositoryIgnoresCorruptCache(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	if err := mr.Set("assessment:bank:"+assessment.DefaultBankID, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	loader := &countingLoader{BankLoader: memory.NewStaticBankLoader(assessment.DefaultBank())}
	repo := NewBankRepository(newClient(mr), loader, time.Minute)

	if _, err := repo.GetBank(context.Background(), assessment.DefaultBankID); err != nil {
		t.Fatalf("get bank: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader fallback, calls=%d", loader.calls)
	}
}

func TestBankRepositoryMissingBank(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	repo := NewBankRepository(newClient(mr), memory.NewStaticBankLoader(), time.Minute)
	if _, err := repo.GetBank(context.Background(), "nope"); !errors.Is(err, domain.ErrBankNotFound) {
		t.Fatalf("expected bank not found, got %v", err)
	}
}

type countingLoader struct {
	BankLoader
	calls int
}

func (l *countingLoader) LoadBank(ctx context.Context, bankID string) (domain.QuestionBank, error) {
	l.calls++
	return l.BankLoader.LoadBank(ctx, bankID)
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}
