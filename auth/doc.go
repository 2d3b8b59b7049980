// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides privacy helpers for personal identifiers.

The election server never authenticates voters beyond resolving their
mynumber; it does however log ballot outcomes, and those logs must not carry
citizen numbers or client IP addresses in the clear.

# Identifier Hashing

	hash := auth.HashIdentifier(mynumber, cfg.LogSalt)

Returns the first 8 bytes (16 hex chars) of HMAC-SHA256. The same value and
salt always produce the same hash, so log lines for one citizen can be grouped
without knowing who the citizen is. Empty input hashes to "".
*/
package auth
