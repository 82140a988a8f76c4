package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/flexfit/fitness-api/internal/core/domain"
	"github.com/flexfit/fitness-api/internal/core/ports"
)

// UserService keeps the local user set in sync with the identity provider.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Sync applies the first-write-wins upsert: an already-synced clerk id is
// never overwritten by this path. The unique index on clerk_id is the
// authoritative guard; the lookup only avoids a pointless insert attempt.
func (s *UserService) Sync(ctx context.Context, input ports.SyncUserInput) (string, error) {
	existing, err := s.repo.FindByClerkID(ctx, input.ClerkID)
	if err == nil {
		s.log.Debug().Str("clerk_id", input.ClerkID).Msg("user already synced")
		return existing.ID, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", fmt.Errorf("sync user: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ClerkID:   input.ClerkID,
		Email:     input.Email,
		Name:      input.Name,
		Image:     input.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Insert(ctx, user)
	if errors.Is(err, domain.ErrUserExists) {
		// A concurrent delivery won the race; fetch the row it created.
		winner, findErr := s.repo.FindByClerkID(ctx, input.ClerkID)
		if findErr != nil {
			return "", fmt.Errorf("sync user: %w", findErr)
		}
		return winner.ID, nil
	}
	if err != nil {
		return "", fmt.Errorf("sync user: %w", err)
	}

	s.log.Info().Str("clerk_id", input.ClerkID).Str("email", input.Email).Msg("user synced")
	return id, nil
}

func (s *UserService) GetByClerkID(ctx context.Context, clerkID string) (*domain.User, error) {
	return s.repo.FindByClerkID(ctx, clerkID)
}

// Update patches the mutable attributes in place. An unknown clerk id is a
// silent no-op, mirroring the sync path's idempotency.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) error {
	if _, err := s.repo.FindByClerkID(ctx, input.ClerkID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("clerk_id", input.ClerkID).Msg("update skipped, user unknown")
			return nil
		}
		return fmt.Errorf("update user: %w", err)
	}

	patch := ports.UserPatch{Name: input.Name, Email: input.Email, Image: input.Image}
	if err := s.repo.Patch(ctx, input.ClerkID, patch); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	s.log.Info().Str("clerk_id", input.ClerkID).Msg("user updated")
	return nil
}
