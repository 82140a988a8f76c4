package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flexfit/fitness-api/internal/core/domain"
	"github.com/flexfit/fitness-api/internal/core/ports"
)

// DeliveryDedup abstracts the webhook delivery idempotency store (Redis).
// It is an optimization only: the user upsert is idempotent on its own, so
// dedup failures never block processing.
type DeliveryDedup interface {
	IsDuplicate(ctx context.Context, messageID string) (bool, error)
	Mark(ctx context.Context, messageID string) error
}

// AuditSink records received identity events asynchronously.
type AuditSink interface {
	Enqueue(record domain.IdentityEventRecord)
}

type webhookService struct {
	verifier ports.SignatureVerifier
	users    ports.UserService
	dedup    DeliveryDedup
	audit    AuditSink
	log      zerolog.Logger
}

// NewWebhookService returns the identity sync gateway. A nil verifier means
// the webhook secret was never configured; every delivery then fails with
// domain.ErrWebhookNotConfigured until the deployment is fixed.
func NewWebhookService(
	verifier ports.SignatureVerifier,
	users ports.UserService,
	dedup DeliveryDedup,
	audit AuditSink,
	log zerolog.Logger,
) ports.WebhookService {
	return &webhookService{
		verifier: verifier,
		users:    users,
		dedup:    dedup,
		audit:    audit,
		log:      log,
	}
}

// HandleEvent authenticates and applies one identity-event delivery.
// Verification runs over the raw body before the payload is interpreted in
// any way; a spoofed event never reaches business logic.
func (s *webhookService) HandleEvent(ctx context.Context, payload []byte, messageID string, headers http.Header) (*ports.WebhookResult, error) {
	if s.verifier == nil {
		return nil, domain.ErrWebhookNotConfigured
	}

	if err := s.verifier.Verify(payload, headers); err != nil {
		s.log.Warn().Err(err).Str("message_id", messageID).Msg("webhook signature verification failed")
		return nil, domain.ErrInvalidSignature
	}

	var event domain.IdentityEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	// Re-delivery short-circuit. Check failures are logged and ignored: the
	// sync itself is idempotent, so processing twice is safe.
	if dup, err := s.dedup.IsDuplicate(ctx, messageID); err != nil {
		s.log.Warn().Err(err).Str("message_id", messageID).Msg("dedup check failed, processing anyway")
	} else if dup {
		s.log.Debug().Str("message_id", messageID).Str("type", event.Type).Msg("duplicate delivery skipped")
		return &ports.WebhookResult{EventType: event.Type, Duplicate: true}, nil
	}

	result := &ports.WebhookResult{EventType: event.Type}
	outcome := "ignored"

	switch event.Type {
	case domain.EventUserCreated:
		if err := s.handleUserCreated(ctx, event.Data); err != nil {
			return nil, err
		}
		result.Handled = true
		outcome = "synced"
	default:
		// Unhandled kinds are acknowledged, not failed.
		s.log.Info().Str("type", event.Type).Str("message_id", messageID).Msg("webhook event ignored")
	}

	// Mark only after successful processing so a failed write stays
	// re-deliverable by the provider.
	if err := s.dedup.Mark(ctx, messageID); err != nil {
		s.log.Warn().Err(err).Str("message_id", messageID).Msg("failed to set dedup key")
	}

	if s.audit != nil {
		s.audit.Enqueue(domain.IdentityEventRecord{
			MessageID:  messageID,
			Type:       event.Type,
			ClerkID:    clerkIDFromData(event.Data),
			Outcome:    outcome,
			ReceivedAt: time.Now().UTC(),
		})
	}

	return result, nil
}

func (s *webhookService) handleUserCreated(ctx context.Context, data json.RawMessage) error {
	var user domain.UserEventData
	if err := json.Unmarshal(data, &user); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	if len(user.EmailAddresses) == 0 {
		s.log.Error().Str("clerk_id", user.ID).Msg("user created event missing email address")
		return domain.ErrMissingEmail
	}

	// First email wins; name falls back to the email so it is never empty.
	email := user.EmailAddresses[0].EmailAddress
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = email
	}

	if _, err := s.users.Sync(ctx, ports.SyncUserInput{
		Email:   email,
		Name:    name,
		Image:   user.ImageURL,
		ClerkID: user.ID,
	}); err != nil {
		return fmt.Errorf("handle user created: %w", err)
	}

	s.log.Info().Str("clerk_id", user.ID).Str("email", email).Msg("user created event processed")
	return nil
}

// clerkIDFromData best-effort extracts the provider user id for the audit
// trail without assuming the full user shape.
func clerkIDFromData(data json.RawMessage) string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return ""
	}
	return probe.ID
}
