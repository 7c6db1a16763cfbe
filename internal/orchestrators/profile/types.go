package profile

import (
	"time"

	"github.com/tavernkeep/guild-api/internal/entities"
)

// Outcome is the terminal state of a deletion confirmation flow.
type Outcome string

const (
	// OutcomeConfirmed means the pending deletion was carried out
	OutcomeConfirmed Outcome = "confirmed"
	// OutcomeCanceled means the pending deletion was abandoned
	OutcomeCanceled Outcome = "canceled"
	// OutcomeTimedOut means no pending deletion was found, either because
	// the deadline passed or because none was ever requested
	OutcomeTimedOut Outcome = "timed_out"
)

// CreateProfileInput defines the input for creating a profile
type CreateProfileInput struct {
	UserID string
}

// CreateProfileOutput defines the output from creating a profile
type CreateProfileOutput struct {
	Profile *entities.Profile
	// StarterItems lists the catalog items granted at creation
	StarterItems []string
}

// GetProfileInput defines the input for viewing a profile
type GetProfileInput struct {
	UserID string
}

// GetProfileOutput is the full profile view with derived values
type GetProfileOutput struct {
	Profile *entities.Profile
	// MaxExp is the experience required to reach the next level
	MaxExp int
	// Power is the display-only aggregate of equipped bonuses and level
	Power int
	// Equipped maps each occupied slot to the equipped item's name
	Equipped map[entities.Slot]string
}

// RequestDeleteInput defines the input for starting a deletion flow
type RequestDeleteInput struct {
	UserID string
}

// RequestDeleteOutput defines the output from starting a deletion flow
type RequestDeleteOutput struct {
	// ExpiresAt is the deadline for confirming or canceling
	ExpiresAt time.Time
}

// ConfirmDeleteInput defines the input for confirming a pending deletion
type ConfirmDeleteInput struct {
	UserID string
}

// ConfirmDeleteOutput defines the output from confirming a pending deletion
type ConfirmDeleteOutput struct {
	Outcome Outcome
	// ItemsDeleted is the number of ownership records removed in the cascade
	ItemsDeleted int
}

// CancelDeleteInput defines the input for canceling a pending deletion
type CancelDeleteInput struct {
	UserID string
}

// CancelDeleteOutput defines the output from canceling a pending deletion
type CancelDeleteOutput struct {
	Outcome Outcome
}
