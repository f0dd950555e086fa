package cli

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"pathfinders-assessment/internal/careers"
	"pathfinders-assessment/internal/config"
	"pathfinders-assessment/internal/infra/memory"
	infraredis "pathfinders-assessment/internal/infra/redis"
)

func TestBuildStoresDefaultsToMemory(t *testing.T) {
	stores, closeFn := buildStores(config.Config{}, nil, nil)
	defer closeFn()

	if _, ok := stores.Banks.(*memory.BankRepository); !ok {
		t.Fatalf("expected memory bank repository, got %T", stores.Banks)
	}
	if _, ok := stores.Leaderboard.(*memory.LeaderboardStore); !ok {
		t.Fatalf("expected memory leaderboard, got %T", stores.Leaderboard)
	}
	bank, err := stores.Banks.GetBank(context.Background(), config.Config{}.BankID())
	if err != nil || bank.Len() != 8 {
		t.Fatalf("expected built-in bank, got %v err=%v", bank, err)
	}
}

func TestBuildStoresUsesRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	stores, closeFn := buildStores(config.Config{}, client, nil)
	defer closeFn()

	if _, ok := stores.Attempts.(*infraredis.AttemptStore); !ok {
		t.Fatalf("expected redis attempt store, got %T", stores.Attempts)
	}
	if _, ok := stores.Leaderboard.(*infraredis.LeaderboardStore); !ok {
		t.Fatalf("expected redis leaderboard, got %T", stores.Leaderboard)
	}
}

func TestResolvePort(t *testing.T) {
	t.Setenv("PORT", "7070")
	var cfg config.Config
	if got := resolvePort("", cfg); got != "7070" {
		t.Fatalf("expected env port, got %s", got)
	}
	cfg.Server.Port = "9090"
	if got := resolvePort("", cfg); got != "9090" {
		t.Fatalf("expected config port over env, got %s", got)
	}
	if got := resolvePort("6060", cfg); got != "6060" {
		t.Fatalf("expected flag port, got %s", got)
	}

	t.Setenv("PORT", "")
	if got := resolvePort("", config.Config{}); got != "8080" {
		t.Fatalf("expected default port, got %s", got)
	}
}

func TestBuildAdvisorWithoutKey(t *testing.T) {
	if _, ok := buildAdvisor(context.Background(), config.Config{}).(careers.StaticAdvisor); !ok {
		t.Fatalf("expected static advisor without api key")
	}
}
