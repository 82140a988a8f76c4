package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/flexfit/fitness-api/internal/core/domain"
)

const plansCollection = "plans"

type PlanRepository struct {
	coll *mongo.Collection
}

func NewPlanRepository(db *mongo.Database) *PlanRepository {
	return &PlanRepository{coll: db.Collection(plansCollection)}
}

type mongoPlan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Name        string             `bson:"name"`
	WorkoutPlan domain.WorkoutPlan `bson:"workout_plan"`
	DietPlan    domain.DietPlan    `bson:"diet_plan"`
	IsActive    bool               `bson:"is_active"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// Insert persists a new plan document. The partial unique index on
// (user_id, is_active=true) rejects a second active plan for the same user;
// the violation is surfaced as domain.ErrActivePlanConflict.
func (r *PlanRepository) Insert(ctx context.Context, plan *domain.Plan) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPlan{
		UserID:      plan.UserID,
		Name:        plan.Name,
		WorkoutPlan: plan.WorkoutPlan,
		DietPlan:    plan.DietPlan,
		IsActive:    plan.IsActive,
		CreatedAt:   plan.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrActivePlanConflict
		}
		return "", fmt.Errorf("insert plan: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert plan: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// DeactivateActive flips is_active on every active plan owned by the user.
// A single UpdateMany keeps the pass atomic per document and guarantees it
// fully completes before the caller inserts the replacement plan.
func (r *PlanRepository) DeactivateActive(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateMany(ctx,
		bson.M{"user_id": userID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false}},
	)
	if err != nil {
		return 0, fmt.Errorf("deactivate plans: %w", err)
	}
	return res.ModifiedCount, nil
}

// ListByUser returns the user's plans ordered by creation time descending.
func (r *PlanRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Plan
	for cur.Next(ctx) {
		var mp mongoPlan
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode plan: %w", err)
		}
		out = append(out, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return out, nil
}

// EnsureIndexes creates the lookup indexes plus the partial unique index
// backing the at-most-one-active-plan invariant at the storage layer.
func (r *PlanRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"is_active": true}).
				SetName("one_active_plan_per_user"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (mp *mongoPlan) toDomain() *domain.Plan {
	return &domain.Plan{
		ID:          mp.ID.Hex(),
		UserID:      mp.UserID,
		Name:        mp.Name,
		WorkoutPlan: mp.WorkoutPlan,
		DietPlan:    mp.DietPlan,
		IsActive:    mp.IsActive,
		CreatedAt:   mp.CreatedAt,
	}
}
