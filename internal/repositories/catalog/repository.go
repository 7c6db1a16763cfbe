// Package catalog provides the repository interface and types for the
// immutable equipment catalog.
package catalog

import (
	"context"

	"github.com/tavernkeep/guild-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/tavernkeep/guild-api/internal/repositories/catalog Repository

// PutInput stores catalog entries (seeding / admin use)
type PutInput struct {
	Items []*entities.Item
}

// PutOutput contains the number of entries stored
type PutOutput struct {
	Stored int
}

// FindByNamesInput looks up catalog entries by display name
type FindByNamesInput struct {
	Names []string
}

// FindByNamesOutput contains the entries found. Names with no catalog entry
// are silently skipped; callers that care should compare lengths.
type FindByNamesOutput struct {
	Items []*entities.Item
}

// ListAllOutput contains every catalog entry
type ListAllOutput struct {
	Items []*entities.Item
}

// Repository defines the interface for equipment catalog lookups
type Repository interface {
	// Put stores catalog entries, overwriting any with the same name
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// FindByNames returns the catalog entries for the given display names
	FindByNames(ctx context.Context, input FindByNamesInput) (*FindByNamesOutput, error)

	// ListAll returns the whole catalog
	ListAll(ctx context.Context) (*ListAllOutput, error)
}
