// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/core/domain/model/rider"
)

// RiderFilter narrows rider listings. Zero values mean "no filter".
type RiderFilter struct {
	// Service restricts results to one service category.
	Service kernel.ServiceKind
	// AvailableOnly keeps only riders currently marked available.
	AvailableOnly bool
	// Search matches a substring of name, phone, or service.
	Search string
}

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add persists a new rider aggregate to storage.
	// The rider must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider aggregate.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Delete removes a rider aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a rider aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetByUsername retrieves a rider by portal username.
	// Used by the rider login flow.
	GetByUsername(ctx context.Context, username string) (*rider.Rider, error)

	// GetAll retrieves riders matching the filter, newest first.
	GetAll(ctx context.Context, filter RiderFilter) ([]*rider.Rider, error)
}
