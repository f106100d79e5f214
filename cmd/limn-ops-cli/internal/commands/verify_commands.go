package commands

import (
	"fmt"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/app"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/domain/schema"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/infrastructure/persistence"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/config"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// VerifyCommandHandler encapsulates logic for schema verification via CLI.
type VerifyCommandHandler struct {
	logger logger.Logger
}

// NewVerifyCommandHandler initializes and returns a VerifyCommandHandler
// instance with a configured logger.
func NewVerifyCommandHandler() (*VerifyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &VerifyCommandHandler{
		logger: loggerInstance,
	}, nil
}

// VerifyCmd re-queries the database catalog and checks it against an
// expectations file.
func (h *VerifyCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	expectFile, err := cmd.Flags().GetString("expect")
	if err != nil {
		return fmt.Errorf("invalid expect flag: %w", err)
	}
	target, err := cmd.Flags().GetString("target")
	if err != nil {
		return fmt.Errorf("invalid target flag: %w", err)
	}
	envFile, err := cmd.Flags().GetString("env")
	if err != nil {
		return fmt.Errorf("invalid env flag: %w", err)
	}

	targets, err := config.ResolveTargets(target)
	if err != nil {
		return err
	}

	expectations, err := schema.LoadExpectations(expectFile)
	if err != nil {
		return err
	}

	settings, err := config.LoadSettings(envFile, ".env.local")
	if err != nil {
		return err
	}

	failures := 0
	for _, t := range targets {
		report, err := h.verifyTarget(cmd, settings, t, expectations)
		if err != nil {
			return err
		}
		failures += report.Failures
	}

	if failures > 0 {
		return fmt.Errorf("%d verification check(s) failed", failures)
	}
	return nil
}

func (h *VerifyCommandHandler) verifyTarget(cmd *cobra.Command, settings *config.Settings, target string, expectations *schema.Expectations) (*schema.VerificationReport, error) {
	db, err := openTarget(settings, target)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			h.logger.Warn("failed to close ", target, " database: ", err)
		}
	}()

	inspector, err := persistence.NewCatalogInspector(db, h.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog inspector: %w", err)
	}
	verifier, err := app.NewVerificationService(inspector, h.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create verification service: %w", err)
	}

	return verifier.Verify(cmd.Context(), target, expectations)
}

// InitVerifyCommands registers verification commands with the root command.
func InitVerifyCommands(rootCmd *cobra.Command) error {
	handler, err := NewVerifyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create verify command handler: %w", err)
	}

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the database schema against an expectations file",
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().String("expect", "", "Path to the JSON schema expectations file (required)")
	verifyCmd.Flags().String("target", config.TargetDev, "Database target: dev, prod or all")
	verifyCmd.Flags().String("env", ".env", "Dotenv file with database credentials")
	if err := verifyCmd.MarkFlagRequired("expect"); err != nil {
		return fmt.Errorf("failed to mark expect flag required: %w", err)
	}

	rootCmd.AddCommand(verifyCmd)
	return nil
}
