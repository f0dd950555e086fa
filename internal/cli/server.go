package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"pathfinders-assessment/internal/app"
	"pathfinders-assessment/internal/assessment"
	"pathfinders-assessment/internal/careers"
	"pathfinders-assessment/internal/config"
	"pathfinders-assessment/internal/infra/memory"
	"pathfinders-assessment/internal/infra/postgres"
	infraredis "pathfinders-assessment/internal/infra/redis"
	"pathfinders-assessment/internal/logging"
	transport "pathfinders-assessment/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the assessment server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	log := logging.Log

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := resolvePort(portFlag, cfg)

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	stores, closeStores := buildStores(cfg, redisClient, pool)
	defer closeStores()

	service := app.NewAssessmentService(stores,
		app.WithBadgeRules(cfg.BadgeRules()),
		app.WithGoals(cfg.Goals()),
		app.WithCareerAdvisor(buildAdvisor(ctx, cfg)),
		app.WithDefaultBank(cfg.BankID()),
	)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      transport.NewRouter(service),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.WithField("port", finalPort).Info("starting assessment service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("failed to start server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down server...")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// resolvePort prefers the flag, then the config file, then $PORT.
func resolvePort(flag string, cfg config.Config) string {
	for _, p := range []string{flag, cfg.Server.Port, os.Getenv("PORT")} {
		if p != "" {
			return p
		}
	}
	return "8080"
}

// buildStores picks the most durable backend configured for each store:
// Postgres for records, Redis for caches and attempts, memory otherwise.
func buildStores(cfg config.Config, redisClient *redis.Client, pool *pgxpool.Pool) (app.Stores, func()) {
	var loader memory.BankLoader = memory.NewStaticBankLoader(assessment.DefaultBank())
	switch {
	case cfg.Bank.Path != "":
		loader = memory.NewFileBankLoader(cfg.Bank.Path)
	case pool != nil:
		loader = postgres.NewBankLoader(pool)
	}

	bankTTL := config.TTLDuration(cfg.Bank.TTL, 10*time.Minute)
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 24*time.Hour)

	stores := app.Stores{
		Banks:       memory.NewBankRepository(loader, bankTTL),
		Attempts:    memory.NewAttemptStore(),
		Answers:     memory.NewAnswerLog(),
		Profiles:    memory.NewProfileStore(),
		Leaderboard: memory.NewLeaderboardStore(),
	}
	if redisClient != nil {
		stores.Banks = infraredis.NewBankRepository(redisClient, loader, bankTTL)
		stores.Attempts = infraredis.NewAttemptStore(redisClient, redisTTL)
		stores.Leaderboard = infraredis.NewLeaderboardStore(redisClient)
	}

	closeFn := func() {}
	if cfg.Postgres.URL != "" {
		db := postgres.OpenDB(cfg.Postgres.URL)
		stores.Answers = postgres.NewAnswerLog(db)
		stores.Profiles = postgres.NewProfileStore(db)
		stores.Leaderboard = postgres.NewLeaderboardStore(db)
		closeFn = func() { _ = db.Close() }
	}
	return stores, closeFn
}

func buildAdvisor(ctx context.Context, cfg config.Config) app.CareerAdvisor {
	if cfg.Careers.APIKey == "" {
		return careers.StaticAdvisor{}
	}
	advisor, err := careers.NewGeminiAdvisor(ctx, cfg.Careers.APIKey, cfg.Careers.Model, careers.StaticAdvisor{})
	if err != nil {
		logging.Log.WithError(err).Warn("gemini advisor unavailable, using static suggestions")
		return careers.StaticAdvisor{}
	}
	return advisor
}
