package ports

import (
	"context"

	"github.com/flexfit/fitness-api/internal/core/domain"
)

// SyncUserInput is the canonical user projection extracted from an identity
// event.
type SyncUserInput struct {
	Email   string
	Name    string
	Image   *string
	ClerkID string
}

// UpdateUserInput carries the maintenance-path update fields.
type UpdateUserInput struct {
	ClerkID string
	Name    string
	Email   string
	Image   *string
}

// UserService keeps the local user set in sync with the identity provider.
type UserService interface {
	// Sync inserts the user if the clerk id is unknown and no-ops otherwise
	// (first write wins). Returns the internal id in both cases.
	Sync(ctx context.Context, input SyncUserInput) (string, error)
	GetByClerkID(ctx context.Context, clerkID string) (*domain.User, error)
	// Update patches the mutable attributes; unknown clerk ids are a no-op.
	Update(ctx context.Context, input UpdateUserInput) error
}
