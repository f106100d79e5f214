package commands

import (
	"fmt"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/app"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/audit"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/infrastructure/persistence"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/config"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AuditCommandHandler encapsulates logic for audit-log maintenance via CLI.
type AuditCommandHandler struct {
	logger logger.Logger
}

// NewAuditCommandHandler initializes and returns an AuditCommandHandler
// instance with a configured logger.
func NewAuditCommandHandler() (*AuditCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AuditCommandHandler{
		logger: loggerInstance,
	}, nil
}

// CleanupCmd deletes audit log entries older than the retention window.
func (h *AuditCommandHandler) CleanupCmd(cmd *cobra.Command, _ []string) error {
	retentionDays, err := cmd.Flags().GetInt("retention-days")
	if err != nil {
		return fmt.Errorf("invalid retention-days flag: %w", err)
	}
	batchSize, err := cmd.Flags().GetInt("batch-size")
	if err != nil {
		return fmt.Errorf("invalid batch-size flag: %w", err)
	}
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
	confirm, err := cmd.Flags().GetBool("confirm")
	if err != nil {
		return fmt.Errorf("invalid confirm flag: %w", err)
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("invalid force flag: %w", err)
	}

	if !dryRun && !confirm && !force {
		return fmt.Errorf("refusing to delete audit logs without --confirm (or --force); use --dry-run to preview")
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

	repository, err := persistence.NewGormAuditLogRepository(db, h.logger)
	if err != nil {
		return fmt.Errorf("failed to create audit log repository: %w", err)
	}
	service, err := app.NewAuditCleanupService(repository, h.logger)
	if err != nil {
		return fmt.Errorf("failed to create audit cleanup service: %w", err)
	}

	policy := audit.RetentionPolicy{
		RetentionDays: retentionDays,
		BatchSize:     batchSize,
	}
	_, err = service.Cleanup(cmd.Context(), target, policy, dryRun)
	return err
}

// InitAuditCommands registers audit-log commands with the root command.
func InitAuditCommands(rootCmd *cobra.Command) error {
	handler, err := NewAuditCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create audit command handler: %w", err)
	}

	cleanupCmd := &cobra.Command{
		Use:   "audit-cleanup",
		Short: "Delete audit log entries older than the retention window",
		RunE:  handler.CleanupCmd,
	}
	cleanupCmd.Flags().Int("retention-days", 90, "Entries older than this many days are deleted")
	cleanupCmd.Flags().Int("batch-size", 500, "Maximum rows per delete statement")
	cleanupCmd.Flags().String("target", config.TargetDev, "Database target: dev or prod")
	cleanupCmd.Flags().String("env", ".env", "Dotenv file with database credentials")
	cleanupCmd.Flags().Bool("dry-run", false, "Count eligible entries without deleting")
	cleanupCmd.Flags().Bool("confirm", false, "Confirm the deletion")
	cleanupCmd.Flags().Bool("force", false, "Skip the confirmation requirement")

	rootCmd.AddCommand(cleanupCmd)
	return nil
}
