// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store implements the election data store on PostgreSQL or SQLite
// through sqlx. Lookup misses return ErrNotFound.
package store
