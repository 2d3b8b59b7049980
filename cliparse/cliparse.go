package cliparse

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	LogSalt        string
	SerializeQuota bool
	EnvFile        string
}

// BindFlags registers the configuration flags on fs
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	// Network config (can be CLI args or env)
	fs.IntVarP(&cfg.Port, "port", "p", 0, "Server port")
	fs.StringVarP(&cfg.DatabaseURL, "database-url", "d", "", "Database URL")
	fs.StringVarP(&cfg.DatabaseType, "database-type", "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.LogSalt, "log-salt", "", "Salt for hashing personal identifiers in logs (prefer env)")

	fs.BoolVar(&cfg.SerializeQuota, "serialize-quota", false, "Serialize quota check and insert per citizen")
	fs.StringVar(&cfg.EnvFile, "env-file", "", "Load environment variables from this file (default .env if present)")
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := pflag.NewFlagSet("election", pflag.ContinueOnError)
	BindFlags(fs, &cfg)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return Resolve(fs, cfg)
}

// Resolve fills values not given on the command line from the environment
// (after loading the env file) and validates the result.
func Resolve(fs *pflag.FlagSet, cfg Config) (Config, error) {
	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("invalid database type %q (sqlite or postgres)", cfg.DatabaseType)
	}

	if fs == nil || !fs.Changed("serialize-quota") {
		if v := os.Getenv("SERIALIZE_QUOTA"); v != "" {
			serialize, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid SERIALIZE_QUOTA env variable")
			}
			cfg.SerializeQuota = serialize
		}
	}

	// Secrets - MUST be provided
	if cfg.LogSalt == "" {
		cfg.LogSalt = os.Getenv("LOG_SALT")
	}
	if cfg.LogSalt == "" {
		return Config{}, errors.New("LOG_SALT required")
	}

	return cfg, nil
}

// loadEnvFile loads path, or .env when path is empty. Variables already set in
// the environment win. A missing default .env is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
