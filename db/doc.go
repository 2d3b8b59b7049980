// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the election schema.

# Connecting

Open selects the driver from the configured database type and pings:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "postgres" (github.com/lib/pq) and "sqlite"
(modernc.org/sqlite). SQLite pools are limited to one open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: citizens, unique mynumber, vote quota (votes)
  - candidates: unique name, political_party, sex
  - votes: user_id, candidate_id, keyword

# Relationships

	users 1──* votes
	candidates 1──* votes

Users and candidates are seeded externally. Votes are only written by casting
and only removed all at once by a reset.

# Indexes

  - candidates.political_party
  - votes.user_id
  - votes.candidate_id
*/
package db
