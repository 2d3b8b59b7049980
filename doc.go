// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the election server.

Citizens cast votes for candidates, limited by the vote quota on their
record, and the server reports live tallies: the overall ranking, per-party
and per-sex totals and the keywords supporters gave.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:election.db LOG_SALT=... go run .

Or with flags:

	go run . serve -p 3318 -t postgres -d "postgres://..." --log-salt ...

# Commands

  - serve: HTTP server (also the default when no command is given)
  - reset: delete all votes, keeping citizens and candidates
  - tally: print the ranking, party totals and sex ratio

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string
  - LOG_SALT (--log-salt): Secret for hashing identifiers in logs

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SERIALIZE_QUOTA (--serialize-quota): serialize ballots per citizen

# Architecture

  - election: quota checks, ballot casting, tallies and reset
  - store: SQL data store behind the election engine
  - handlers: HTTP request handlers (results, voting)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain rows and request/response types
  - auth: Identifier hashing for logs
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
