package commands

import (
	"fmt"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/infrastructure/rewrite"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// RewriteCommandHandler encapsulates logic for bulk source rewrites via CLI.
type RewriteCommandHandler struct {
	logger logger.Logger
}

// NewRewriteCommandHandler initializes and returns a RewriteCommandHandler
// instance with a configured logger.
func NewRewriteCommandHandler() (*RewriteCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &RewriteCommandHandler{
		logger: loggerInstance,
	}, nil
}

// FixLoggerCallsCmd normalizes logger call signatures in the given files.
func (h *RewriteCommandHandler) FixLoggerCallsCmd(cmd *cobra.Command, args []string) error {
	noFix, err := cmd.Flags().GetBool("no-fix")
	if err != nil {
		return fmt.Errorf("invalid no-fix flag: %w", err)
	}

	summary := rewrite.ApplyToFiles(args, rewrite.FixLoggerCalls, noFix, h.logger)
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to process", summary.Failed)
	}
	return nil
}

// MigrateRouteParamsCmd converts dynamic route pages to the Promise-params
// pattern.
func (h *RewriteCommandHandler) MigrateRouteParamsCmd(cmd *cobra.Command, args []string) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("invalid dry-run flag: %w", err)
	}

	summary := rewrite.ApplyToFiles(args, rewrite.MigrateRouteParams, dryRun, h.logger)
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to process", summary.Failed)
	}
	return nil
}

// InitRewriteCommands registers source-rewrite commands with the root command.
func InitRewriteCommands(rootCmd *cobra.Command) error {
	handler, err := NewRewriteCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create rewrite command handler: %w", err)
	}

	fixLoggerCmd := &cobra.Command{
		Use:   "fix-logger-calls <file>...",
		Short: "Normalize logger call signatures to log.level(message, meta?)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  handler.FixLoggerCallsCmd,
	}
	fixLoggerCmd.Flags().Bool("no-fix", false, "Report files that would change without writing")

	migrateParamsCmd := &cobra.Command{
		Use:   "migrate-route-params <file>...",
		Short: "Convert dynamic route pages to the Promise-params pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE:  handler.MigrateRouteParamsCmd,
	}
	migrateParamsCmd.Flags().Bool("dry-run", false, "Report files that would change without writing")

	rootCmd.AddCommand(fixLoggerCmd)
	rootCmd.AddCommand(migrateParamsCmd)
	return nil
}
