// Package main is the entry point for the limn-ops-cli application.
// It initializes the root command and registers the operational sub-commands
// (migrations, verification, audit cleanup, backfills, rewrites, analysis),
// then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/ethan273/limn-systems-enterprise-sub010/cmd/limn-ops-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "limn-ops-cli",
		Short: "Operational tooling for the limn-systems-enterprise application",
		Long: `limn-ops-cli is a command-line tool for operating the
limn-systems-enterprise database and codebase.
Supports idempotent SQL migrations, schema verification, audit log cleanup,
user profile backfills, bulk source rewrites, PWA setup, and codebase analysis.

Database credentials are read from the environment or a dotenv file:
- DEV_DATABASE_URL
- PROD_DATABASE_URL
- DATABASE_URL (fallback for the dev target)
If a target's URL is not set, commands addressing that target will fail.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitVerifyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize verify commands: %w", err)
	}

	if err := commands.InitAuditCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize audit commands: %w", err)
	}

	if err := commands.InitBackfillCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize backfill commands: %w", err)
	}

	if err := commands.InitRewriteCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize rewrite commands: %w", err)
	}

	if err := commands.InitPWACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize pwa commands: %w", err)
	}

	if err := commands.InitAnalyzeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize analyze commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(os.Stderr)
}
