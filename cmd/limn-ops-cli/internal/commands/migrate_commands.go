package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/app"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/migration"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/infrastructure/persistence"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/config"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler encapsulates logic for applying SQL migrations via CLI.
type MigrateCommandHandler struct {
	runner migration.Runner
	logger logger.Logger
}

// NewMigrateCommandHandler initializes and returns a MigrateCommandHandler
// instance with configured logger and migration runner.
func NewMigrateCommandHandler() (*MigrateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	runner, err := app.NewMigrationRunner(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration runner: %w", err)
	}

	return &MigrateCommandHandler{
		runner: runner,
		logger: loggerInstance,
	}, nil
}

// ApplyCmd applies a migration file to the selected targets, dev before prod,
// and writes the run reports to the results file.
func (h *MigrateCommandHandler) ApplyCmd(cmd *cobra.Command, _ []string) error {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("invalid file flag: %w", err)
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
	useTx, err := cmd.Flags().GetBool("transaction")
	if err != nil {
		return fmt.Errorf("invalid transaction flag: %w", err)
	}
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("invalid out flag: %w", err)
	}

	targets, err := config.ResolveTargets(target)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Clean(file))
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	statements := migration.SplitStatements(string(data))
	if len(statements) == 0 {
		h.logger.Warn("no executable statements in ", file)
		return nil
	}
	h.logger.Info(len(statements), " statement(s) in ", file)

	if dryRun {
		var reports []*migration.Report
		for _, t := range targets {
			reports = append(reports, h.runner.Plan(t, file, statements))
		}
		return writeJSONFile(outPath, reports)
	}

	settings, err := config.LoadSettings(envFile, ".env.local")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var reports []*migration.Report
	for _, t := range targets {
		report, applyErr := h.applyToTarget(ctx, settings, t, file, statements, useTx)
		if report != nil {
			reports = append(reports, report)
		}
		if applyErr != nil {
			// Still leave the partial reports behind for inspection.
			if writeErr := writeJSONFile(outPath, reports); writeErr != nil {
				h.logger.Error(writeErr)
			}
			return applyErr
		}
	}

	return writeJSONFile(outPath, reports)
}

func (h *MigrateCommandHandler) applyToTarget(ctx context.Context, settings *config.Settings, target, file string, statements []string, useTx bool) (*migration.Report, error) {
	db, err := openTarget(settings, target)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			h.logger.Warn("failed to close ", target, " database: ", err)
		}
	}()

	conn, err := persistence.AcquireConn(ctx, db)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = conn.Close()
	}()

	h.logger.Info("Applying ", file, " to ", target)

	if !useTx {
		return h.runner.Apply(ctx, conn, target, file, statements)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction on %s: %w", target, err)
	}

	report, err := h.runner.Apply(ctx, tx, target, file, statements)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			h.logger.Error("failed to roll back transaction on ", target, ": ", rbErr)
		}
		return report, err
	}
	if err := tx.Commit(); err != nil {
		return report, fmt.Errorf("failed to commit transaction on %s: %w", target, err)
	}
	return report, nil
}

// InitMigrateCommands registers migration commands with the root command.
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler, err := NewMigrateCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create migrate command handler: %w", err)
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply a SQL migration file to the dev and/or prod database",
		Long: `Splits a migration file into statements (handling dollar-quoted blocks),
executes them in order on a single connection, and treats "already exists"
failures as skipped. Any other failure aborts the remaining statements.`,
		RunE: handler.ApplyCmd,
	}
	migrateCmd.Flags().String("file", "", "Path to the SQL migration file (required)")
	migrateCmd.Flags().String("target", config.TargetDev, "Database target: dev, prod or all (dev runs first)")
	migrateCmd.Flags().String("env", ".env", "Dotenv file with database credentials")
	migrateCmd.Flags().Bool("dry-run", false, "Classify statements without executing them")
	migrateCmd.Flags().Bool("transaction", false, "Wrap the run in a single transaction")
	migrateCmd.Flags().String("out", "migration-results.json", "Path of the JSON results file")
	if err := migrateCmd.MarkFlagRequired("file"); err != nil {
		return fmt.Errorf("failed to mark file flag required: %w", err)
	}

	rootCmd.AddCommand(migrateCmd)
	return nil
}
