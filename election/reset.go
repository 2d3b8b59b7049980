// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"
)

// Reset deletes every vote. Users and candidates are kept. Calling it again
// on an empty vote table changes nothing.
func (e *Engine) Reset(ctx context.Context) error {
	if err := e.store.DeleteAllVotes(ctx); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}
	e.logger.Info("votes reset")
	return nil
}
