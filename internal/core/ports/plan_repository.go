package ports

import (
	"context"

	"github.com/flexfit/fitness-api/internal/core/domain"
)

// PlanRepository defines persistence operations for fitness plans.
type PlanRepository interface {
	// Insert persists a new plan and returns its internal id. The plans
	// collection carries a partial unique index on (user_id, is_active=true);
	// a violation is surfaced as domain.ErrActivePlanConflict.
	Insert(ctx context.Context, plan *domain.Plan) (string, error)

	// DeactivateActive flips is_active to false on every active plan owned
	// by the given internal user id and returns how many were flipped.
	DeactivateActive(ctx context.Context, userID string) (int64, error)

	// ListByUser returns all plans owned by the given internal user id,
	// ordered by creation time descending.
	ListByUser(ctx context.Context, userID string) ([]*domain.Plan, error)
}
