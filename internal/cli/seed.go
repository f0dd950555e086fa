package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"

	"pathfinders-assessment/internal/assessment"
	"pathfinders-assessment/internal/infra/memory"
	"pathfinders-assessment/internal/infra/postgres"
	"pathfinders-assessment/internal/logging"
)

// NewSeedCmd writes a question bank into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	var file, bankID string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store a question bank in Postgres (the built-in bank by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath, file, bankID)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML bank file to load instead of the built-in bank")
	cmd.Flags().StringVar(&bankID, "bank", "", "bank id inside --file (defaults to bank.id from config)")
	return cmd
}

func runSeed(ctx context.Context, configPath, file, bankID string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}

	bank := assessment.DefaultBank()
	if file != "" {
		if bankID == "" {
			bankID = cfg.BankID()
		}
		doc, err := memory.NewFileBankLoader(file).LoadBank(ctx, bankID)
		if err != nil {
			return err
		}
		if bank, err = assessment.FromDocument(doc); err != nil {
			return fmt.Errorf("invalid bank %s: %w", file, err)
		}
	}

	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.NewBankLoader(pool).SaveBank(ctx, bank.Document()); err != nil {
		return err
	}
	logging.Log.WithFields(map[string]interface{}{
		"bank":      bank.ID(),
		"questions": bank.Len(),
	}).Info("bank seeded")
	return nil
}
