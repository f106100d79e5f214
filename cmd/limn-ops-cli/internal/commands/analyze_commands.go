package commands

import (
	"fmt"
	"path/filepath"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/infrastructure/analyze"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AnalyzeCommandHandler encapsulates logic for codebase analysis via CLI.
type AnalyzeCommandHandler struct {
	logger logger.Logger
}

// NewAnalyzeCommandHandler initializes and returns an AnalyzeCommandHandler
// instance with a configured logger.
func NewAnalyzeCommandHandler() (*AnalyzeCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AnalyzeCommandHandler{
		logger: loggerInstance,
	}, nil
}

// AnalyzeCmd walks the application checkout and writes the statistics report.
func (h *AnalyzeCommandHandler) AnalyzeCmd(cmd *cobra.Command, _ []string) error {
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return fmt.Errorf("invalid root flag: %w", err)
	}
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("invalid out flag: %w", err)
	}
	if outPath == "" {
		outPath = filepath.Join(root, "app-analysis.json")
	}

	analyzer := analyze.NewAnalyzer(root, h.logger)
	report, err := analyzer.Run()
	if err != nil {
		return err
	}

	if err := report.WriteFile(outPath); err != nil {
		return err
	}
	h.logger.Info("Analysis report saved to ", outPath)
	return nil
}

// InitAnalyzeCommands registers analysis commands with the root command.
func InitAnalyzeCommands(rootCmd *cobra.Command) error {
	handler, err := NewAnalyzeCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create analyze command handler: %w", err)
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report code, schema and dependency statistics for the application",
		RunE:  handler.AnalyzeCmd,
	}
	analyzeCmd.Flags().String("root", ".", "Application checkout root")
	analyzeCmd.Flags().String("out", "", "Path of the JSON report (default <root>/app-analysis.json)")

	rootCmd.AddCommand(analyzeCmd)
	return nil
}
