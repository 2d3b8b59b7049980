// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashIdentifier creates a one-way hash of a personal identifier (a citizen's
// mynumber or a client IP) so it can be logged and correlated without being
// stored. Includes salt to prevent rainbow table attacks.
func HashIdentifier(value, salt string) string {
	if value == "" {
		return ""
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(value))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for correlation
	return hex.EncodeToString(sum[:8])
}
