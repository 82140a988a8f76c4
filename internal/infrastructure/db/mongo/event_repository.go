package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/flexfit/fitness-api/internal/core/domain"
	"github.com/flexfit/fitness-api/internal/core/ports"
)

const identityEventsCollection = "identity_events"

// EventRepository persists received identity events to the audit collection.
type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) ports.EventRepository {
	return &EventRepository{coll: db.Collection(identityEventsCollection)}
}

// InsertEvent appends one identity event to the audit trail.
func (r *EventRepository) InsertEvent(ctx context.Context, record *domain.IdentityEventRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"message_id":   record.MessageID,
		"type":         record.Type,
		"outcome":      record.Outcome,
		"received_at":  record.ReceivedAt,
		"processed_at": time.Now().UTC(),
	}
	if record.ClerkID != "" {
		doc["clerk_id"] = record.ClerkID
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
