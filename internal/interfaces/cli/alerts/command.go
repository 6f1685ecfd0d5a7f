package alerts

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	alertApp "licenza/internal/application/alert"
	"licenza/internal/infrastructure/config"
	"licenza/internal/infrastructure/database"
	"licenza/internal/infrastructure/email"
	"licenza/internal/infrastructure/migration"
	"licenza/internal/infrastructure/repository"
	"licenza/internal/shared/logger"
)

var env string

// NewCommand builds the one-shot alert run command, intended for cron or
// manual invocation when the in-process scheduler is disabled.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Run the expiry alert check once and exit",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.Run(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	settingsRepo := repository.NewAlertSettingsRepository(database.Get(), log)
	if err := settingsRepo.EnsureDefault(cmd.Context()); err != nil {
		return fmt.Errorf("failed to seed alert settings: %w", err)
	}

	licenseRepo := repository.NewLicenseRepository(database.Get(), log)
	ledgerRepo := repository.NewNotificationLedgerRepository(database.Get(), log)
	mailer := email.NewSMTPMailer(log)

	service := alertApp.NewService(settingsRepo, licenseRepo, ledgerRepo, mailer, log)

	sent, message, err := service.RunAlerts(cmd.Context())
	if err != nil {
		return fmt.Errorf("alert run failed: %w", err)
	}

	log.Infow("alert run finished", "sent", sent, "message", message)
	return nil
}
