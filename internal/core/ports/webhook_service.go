package ports

import (
	"context"
	"net/http"
)

// SignatureVerifier authenticates a webhook delivery. Verification runs over
// the exact raw body bytes plus the provider headers; implementations must
// not re-serialize the payload.
type SignatureVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

// WebhookResult reports what the gateway did with a verified delivery.
type WebhookResult struct {
	EventType string
	// Handled is true when the event kind triggered write logic. Unhandled
	// kinds are acknowledged but deliberately ignored.
	Handled bool
	// Duplicate is true when the delivery was short-circuited by the
	// idempotency store.
	Duplicate bool
}

// WebhookService is the identity sync gateway: it authenticates an inbound
// identity-event payload and applies it to the user set exactly once in
// effect, however many times it is delivered.
type WebhookService interface {
	HandleEvent(ctx context.Context, payload []byte, messageID string, headers http.Header) (*WebhookResult, error)
}
