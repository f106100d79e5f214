package commands

import (
	"fmt"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/infrastructure/webapp"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// PWACommandHandler encapsulates logic for progressive web app setup via CLI.
type PWACommandHandler struct {
	logger logger.Logger
}

// NewPWACommandHandler initializes and returns a PWACommandHandler instance
// with a configured logger.
func NewPWACommandHandler() (*PWACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &PWACommandHandler{
		logger: loggerInstance,
	}, nil
}

// SetupCmd writes the web app manifest and reports missing icon assets.
func (h *PWACommandHandler) SetupCmd(cmd *cobra.Command, args []string) error {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("invalid dir flag: %w", err)
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	shortName, err := cmd.Flags().GetString("short-name")
	if err != nil {
		return fmt.Errorf("invalid short-name flag: %w", err)
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("invalid force flag: %w", err)
	}

	manifest := webapp.DefaultManifest(name, shortName)
	path, written, err := webapp.WriteManifest(dir, manifest, force)
	if err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if written {
		h.logger.Info("Wrote manifest to", path)
	} else {
		h.logger.Info("Manifest already exists at", path, "(use --force to overwrite)")
	}

	missing := webapp.MissingIcons(dir, manifest)
	for _, icon := range missing {
		h.logger.Warn("Missing icon asset:", icon)
	}
	if len(missing) == 0 {
		h.logger.Info("All icon assets present")
	}
	return nil
}

// InitPWACommands registers PWA setup commands with the root command.
func InitPWACommands(rootCmd *cobra.Command) error {
	handler, err := NewPWACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create pwa command handler: %w", err)
	}

	setupCmd := &cobra.Command{
		Use:   "pwa-setup",
		Short: "Generate the web app manifest and check icon assets",
		RunE:  handler.SetupCmd,
	}
	setupCmd.Flags().String("dir", "public", "Static assets directory")
	setupCmd.Flags().String("name", "Limn Systems Enterprise", "Application name")
	setupCmd.Flags().String("short-name", "Limn", "Short application name")
	setupCmd.Flags().Bool("force", false, "Overwrite an existing manifest")

	rootCmd.AddCommand(setupCmd)
	return nil
}
