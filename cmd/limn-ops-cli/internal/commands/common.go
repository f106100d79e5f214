package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/infrastructure/persistence"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/config"
	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/logger"

	"gorm.io/gorm"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}
	if level := os.Getenv(config.EnvLogLevel); level != "" {
		settings.LogLevel = level
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// openTarget loads settings for a named target and opens its database.
func openTarget(settings *config.Settings, target string) (*gorm.DB, error) {
	dbSettings, err := settings.TargetSettings(target)
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(dbSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", target, err)
	}
	return db, nil
}

// writeJSONFile writes v as indented JSON, for the results files some
// commands leave behind.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write results file %s: %w", path, err)
	}
	return nil
}
