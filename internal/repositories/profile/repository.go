// Package profile provides the repository interface and types for player
// profile persistence.
package profile

import (
	"context"

	"github.com/tavernkeep/guild-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=profilemock github.com/tavernkeep/guild-api/internal/repositories/profile Repository

// CreateInput contains parameters for creating a profile
type CreateInput struct {
	Profile *entities.Profile
}

// CreateOutput contains the result of creating a profile
type CreateOutput struct {
	Profile *entities.Profile
}

// GetInput contains parameters for retrieving a profile
type GetInput struct {
	UserID string
}

// GetOutput contains the result of retrieving a profile
type GetOutput struct {
	Profile *entities.Profile
}

// UpdateInput contains the full profile state to persist
type UpdateInput struct {
	Profile *entities.Profile
}

// UpdateOutput contains the result of updating a profile
type UpdateOutput struct {
	Profile *entities.Profile
}

// DeleteInput contains parameters for deleting a profile
type DeleteInput struct {
	UserID string
}

// DeleteOutput contains the result of deleting a profile
type DeleteOutput struct{}

// CountOutput contains the number of existing profiles
type CountOutput struct {
	Count int64
}

// Repository defines the interface for profile storage operations
type Repository interface {
	// Create stores a new profile; it fails if one already exists for the user
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a profile by user ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing profile's state
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a profile
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Count returns the number of stored profiles
	Count(ctx context.Context) (*CountOutput, error)
}
