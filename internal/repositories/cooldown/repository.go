// Package cooldown provides the per-user, per-action rate-limit window
// store. Entries are evicted by the backing store's time-to-live rather
// than accumulating for the life of the process.
package cooldown

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=cooldownmock github.com/tavernkeep/guild-api/internal/repositories/cooldown Repository

// CheckInput identifies the (user, action) pair and the window to apply
type CheckInput struct {
	UserID string
	Action string
	Window time.Duration
}

// CheckOutput reports the throttle decision. SecondsRemaining of 0 means
// the action is permitted and a new window has started; any other value is
// the whole-second ceiling of the time left on the active window.
type CheckOutput struct {
	SecondsRemaining int
}

// Repository defines the interface for cooldown window checks
type Repository interface {
	// Check starts a window if none is active, otherwise reports the time
	// remaining on the active one
	Check(ctx context.Context, input CheckInput) (*CheckOutput, error)
}
