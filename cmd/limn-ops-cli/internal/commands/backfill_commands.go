package commands

import (
	"fmt"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/app"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/infrastructure/persistence"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/config"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// BackfillCommandHandler encapsulates logic for data backfills via CLI.
type BackfillCommandHandler struct {
	logger logger.Logger
}

// NewBackfillCommandHandler initializes and returns a BackfillCommandHandler
// instance with a configured logger.
func NewBackfillCommandHandler() (*BackfillCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &BackfillCommandHandler{
		logger: loggerInstance,
	}, nil
}

// ProfilesCmd creates default profiles for users that are missing one.
func (h *BackfillCommandHandler) ProfilesCmd(cmd *cobra.Command, _ []string) error {
	target, err := cmd.Flags().GetString("target")
	if err != nil {
		return fmt.Errorf("invalid target flag: %w", err)
	}
	envFile, err := cmd.Flags().GetString("env")
	if err != nil {
		return fmt.Errorf("invalid env flag: %w", err)
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("invalid dry-run flag: %w", err)
	}

	settings, err := config.LoadSettings(envFile, ".env.local")
	if err != nil {
		return err
	}

	db, err := openTarget(settings, target)
	if err != nil {
		return err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			h.logger.Warn("failed to close ", target, " database: ", err)
		}
	}()

	repository, err := persistence.NewGormAccountRepository(db, h.logger)
	if err != nil {
		return fmt.Errorf("failed to create account repository: %w", err)
	}
	service, err := app.NewBackfillService(repository, h.logger)
	if err != nil {
		return fmt.Errorf("failed to create backfill service: %w", err)
	}

	report, err := service.Backfill(cmd.Context(), target, dryRun)
	if err != nil {
		return err
	}
	if report.Failed > 0 {
		return fmt.Errorf("profile backfill finished with %d failure(s)", report.Failed)
	}
	return nil
}

// InitBackfillCommands registers backfill commands with the root command.
func InitBackfillCommands(rootCmd *cobra.Command) error {
	handler, err := NewBackfillCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create backfill command handler: %w", err)
	}

	profilesCmd := &cobra.Command{
		Use:   "backfill-profiles",
		Short: "Create default user profiles for users that are missing one",
		RunE:  handler.ProfilesCmd,
	}
	profilesCmd.Flags().String("target", config.TargetDev, "Database target: dev or prod")
	profilesCmd.Flags().String("env", ".env", "Dotenv file with database credentials")
	profilesCmd.Flags().Bool("dry-run", false, "Count missing profiles without creating them")

	rootCmd.AddCommand(profilesCmd)
	return nil
}
