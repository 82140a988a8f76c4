package ports

import (
	"context"

	"github.com/flexfit/fitness-api/internal/core/domain"
)

// UserPatch carries the mutable user attributes for an update. ClerkID and
// the internal identifier are never patched.
type UserPatch struct {
	Name  string
	Email string
	Image *string
}

// UserRepository defines persistence operations for users. The users
// collection carries a unique index on clerk_id; Insert surfaces a violation
// as domain.ErrUserExists so callers can treat concurrent syncs as no-ops.
type UserRepository interface {
	FindByClerkID(ctx context.Context, clerkID string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (string, error)
	Patch(ctx context.Context, clerkID string, patch UserPatch) error
}
