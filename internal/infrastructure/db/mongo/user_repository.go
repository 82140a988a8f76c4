package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/flexfit/fitness-api/internal/core/domain"
	"github.com/flexfit/fitness-api/internal/core/ports"
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ClerkID   string             `bson:"clerk_id"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name"`
	Image     *string            `bson:"image,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *UserRepository) FindByClerkID(ctx context.Context, clerkID string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"clerk_id": clerkID}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// Insert persists a new user. The unique index on clerk_id is the
// authoritative one-user-per-clerk-id guard; a violation is surfaced as
// domain.ErrUserExists.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		ClerkID:   user.ClerkID,
		Email:     user.Email,
		Name:      user.Name,
		Image:     user.Image,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrUserExists
		}
		return "", fmt.Errorf("insert user: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert user: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Patch updates the mutable attributes of the user with the given clerk id.
// The clerk id and internal id are never touched.
func (r *UserRepository) Patch(ctx context.Context, clerkID string, patch ports.UserPatch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"name":       patch.Name,
		"email":      patch.Email,
		"updated_at": time.Now().UTC(),
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}

	_, err := r.coll.UpdateOne(ctx, bson.M{"clerk_id": clerkID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("patch user: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique clerk_id index backing the
// one-user-per-external-identifier invariant.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "clerk_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:        mu.ID.Hex(),
		ClerkID:   mu.ClerkID,
		Email:     mu.Email,
		Name:      mu.Name,
		Image:     mu.Image,
		CreatedAt: mu.CreatedAt,
		UpdatedAt: mu.UpdatedAt,
	}
}
