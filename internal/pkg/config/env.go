package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by the credential loader.
const (
	EnvDevDatabaseURL  = "DEV_DATABASE_URL"
	EnvProdDatabaseURL = "PROD_DATABASE_URL"
	EnvDatabaseURL     = "DATABASE_URL"
	EnvLogLevel        = "LOG_LEVEL"
)

// Settings aggregates everything a CLI run needs: the dev and prod database
// targets plus logger settings. Prod is optional; it is only validated when a
// command actually asks for the prod target.
type Settings struct {
	Dev    *DatabaseSettings
	Prod   *DatabaseSettings
	Logger LoggerSettings
}

// LoadSettings reads dotenv-style files (when present) and the process
// environment into Settings. Missing dotenv files are not an error; the
// scripts historically fell back to the system environment with a warning.
func LoadSettings(envFiles ...string) (*Settings, error) {
	for _, file := range envFiles {
		if file == "" {
			continue
		}
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}

	settings := &Settings{
		Logger: LoggerSettings{
			LogLevel: getEnv(EnvLogLevel, LogLevelInfo),
			LogType:  LogTypeConsole,
		},
	}

	if dsn := getEnv(EnvDevDatabaseURL, os.Getenv(EnvDatabaseURL)); dsn != "" {
		settings.Dev = &DatabaseSettings{Type: PostgresDbType, DSN: dsn}
	}
	if dsn := os.Getenv(EnvProdDatabaseURL); dsn != "" {
		settings.Prod = &DatabaseSettings{Type: PostgresDbType, DSN: dsn}
	}

	return settings, nil
}

// TargetSettings returns validated database settings for a named target.
func (s *Settings) TargetSettings(target string) (*DatabaseSettings, error) {
	var dbSettings *DatabaseSettings
	switch target {
	case TargetDev:
		dbSettings = s.Dev
	case TargetProd:
		dbSettings = s.Prod
	default:
		return nil, fmt.Errorf("unknown target: %s", target)
	}

	if dbSettings == nil {
		return nil, fmt.Errorf("no database settings for target %s: set %s", target, targetEnvVar(target))
	}
	if err := dbSettings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings for target %s: %w", target, err)
	}

	return dbSettings, nil
}

// ResolveTargets expands a --target flag value into an ordered list of
// target names. Dev always runs before prod.
func ResolveTargets(target string) ([]string, error) {
	switch target {
	case TargetDev:
		return []string{TargetDev}, nil
	case TargetProd:
		return []string{TargetProd}, nil
	case TargetAll:
		return []string{TargetDev, TargetProd}, nil
	default:
		return nil, fmt.Errorf("invalid target %q: must be one of dev, prod, all", target)
	}
}

func targetEnvVar(target string) string {
	if target == TargetProd {
		return EnvProdDatabaseURL
	}
	return EnvDevDatabaseURL
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
