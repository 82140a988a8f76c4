package ports

import (
	"context"

	"github.com/flexfit/fitness-api/internal/core/domain"
)

// EventRepository persists received identity events to the audit collection.
type EventRepository interface {
	InsertEvent(ctx context.Context, record *domain.IdentityEventRecord) error
}
