package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrWebhookNotConfigured = errors.New("webhook secret is not configured")
var ErrInvalidSignature = errors.New("invalid webhook signature")
var ErrMissingEmail = errors.New("missing email address in user data")
var ErrMalformedPayload = errors.New("malformed event payload")

// Identity event kinds this service acts on. Anything else is acknowledged
// and recorded but otherwise ignored.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
)

// IdentityEvent is the provider's discriminated webhook payload. Data stays
// opaque until the event kind is known; only handled kinds are decoded.
type IdentityEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// EmailAddress is one entry in the provider's email_addresses list.
type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// UserEventData is the decoded payload of a user.* event.
type UserEventData struct {
	ID             string         `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
	ImageURL       *string        `json:"image_url"`
}

// IdentityEventRecord is the audit-trail projection of a received event.
type IdentityEventRecord struct {
	MessageID  string
	Type       string
	ClerkID    string
	Outcome    string // "synced", "ignored"
	ReceivedAt time.Time
}
