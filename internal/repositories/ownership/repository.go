// Package ownership provides the repository interface and types for the
// records relating profiles to catalog items they own.
package ownership

import (
	"context"

	"github.com/tavernkeep/guild-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=ownershipmock github.com/tavernkeep/guild-api/internal/repositories/ownership Repository

// ListForUserInput contains parameters for listing a user's records
type ListForUserInput struct {
	UserID string
}

// ListForUserOutput contains a user's ownership records
type ListForUserOutput struct {
	Records []*entities.OwnershipRecord
}

// InsertInput grants the named catalog items to a user
type InsertInput struct {
	UserID    string
	ItemNames []string
}

// InsertOutput contains the created records
type InsertOutput struct {
	Records []*entities.OwnershipRecord
}

// SetEquippedInput flips the equipped flag on one record
type SetEquippedInput struct {
	ID       string
	Equipped bool
}

// SetEquippedOutput contains the updated record
type SetEquippedOutput struct {
	Record *entities.OwnershipRecord
}

// BulkSetEquippedInput flips the equipped flag on several records at once
type BulkSetEquippedInput struct {
	IDs      []string
	Equipped bool
}

// BulkSetEquippedOutput contains the number of records updated
type BulkSetEquippedOutput struct {
	Updated int
}

// DeleteForUserInput removes every record owned by a user
type DeleteForUserInput struct {
	UserID string
}

// DeleteForUserOutput contains the number of records removed
type DeleteForUserOutput struct {
	Deleted int
}

// Repository defines the interface for ownership storage operations
type Repository interface {
	// ListForUser returns every record owned by the user
	ListForUser(ctx context.Context, input ListForUserInput) (*ListForUserOutput, error)

	// Insert grants items to a user, creating one record per item name
	Insert(ctx context.Context, input InsertInput) (*InsertOutput, error)

	// SetEquipped updates the equipped flag on a single record
	SetEquipped(ctx context.Context, input SetEquippedInput) (*SetEquippedOutput, error)

	// BulkSetEquipped updates the equipped flag on several records
	BulkSetEquipped(ctx context.Context, input BulkSetEquippedInput) (*BulkSetEquippedOutput, error)

	// DeleteForUser removes all of a user's records (cascade on profile deletion)
	DeleteForUser(ctx context.Context, input DeleteForUserInput) (*DeleteForUserOutput, error)
}
