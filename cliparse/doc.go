// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Commands built with cobra bind the same flags on their own flag set and
resolve them once parsed:

	cliparse.BindFlags(cmd.PersistentFlags(), &cfg)
	// ...
	cfg, err = cliparse.Resolve(cmd.Flags(), cfg)

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: database connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - LogSalt: Secret for hashing mynumbers and IPs in logs (required)
  - SerializeQuota: serialize quota checks per citizen (default: off)
  - EnvFile: file with environment variables (default: .env if present)

# CLI Flags

	-p, --port            Server port
	-d, --database-url    Database URL
	-t, --database-type   sqlite or postgres
	--log-salt            Log hashing salt
	--serialize-quota     Serialize quota check and insert per citizen
	--env-file            Environment file

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	LOG_SALT        → --log-salt
	SERIALIZE_QUOTA → --serialize-quota

CLI flags take precedence over environment variables, which take precedence
over the env file (loaded with github.com/joho/godotenv).

# Validation

Resolve returns an error if required values are missing or malformed:

  - DATABASE_URL must be provided
  - LOG_SALT must be provided
  - PORT and SERIALIZE_QUOTA must parse
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse
