// Package confirmation provides short-lived pending-confirmation sessions
// for destructive operations. A session is single use and evicted by the
// backing store's time-to-live when it is never consumed.
package confirmation

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=confirmationmock github.com/tavernkeep/guild-api/internal/repositories/confirmation Repository

// DefaultTTL is the confirmation deadline applied when CreateInput.TTL is
// zero.
const DefaultTTL = 15 * time.Second

// Session is a pending confirmation for a (user, action) pair.
type Session struct {
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateInput defines the input for creating a confirmation session
type CreateInput struct {
	UserID string
	Action string
	// TTL overrides DefaultTTL when positive
	TTL time.Duration
}

// CreateOutput defines the output from creating a confirmation session
type CreateOutput struct {
	Session *Session
}

// ConsumeInput defines the input for consuming a confirmation session
type ConsumeInput struct {
	UserID string
	Action string
}

// ConsumeOutput defines the output from consuming a confirmation session
type ConsumeOutput struct {
	Session *Session
}

// Repository defines the interface for confirmation session storage
type Repository interface {
	// Create starts a pending confirmation. Creating again for the same
	// (user, action) pair replaces the session and restarts its deadline.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Consume removes and returns the pending session. It returns a
	// not-found error when no session exists or the deadline has passed.
	Consume(ctx context.Context, input ConsumeInput) (*ConsumeOutput, error)

	// Cancel removes the pending session without acting on it. It returns
	// a not-found error when no session exists.
	Cancel(ctx context.Context, input ConsumeInput) (*ConsumeOutput, error)
}
