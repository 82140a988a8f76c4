// Package webhook adapts the svix verification library to the gateway's
// SignatureVerifier port. Clerk signs its webhook deliveries with the svix
// scheme (HMAC over id.timestamp.body, with bounded timestamp skew).
package webhook

import (
	"fmt"
	"net/http"

	svix "github.com/svix/svix-webhooks/go"
)

// SvixVerifier verifies webhook deliveries against a shared signing secret.
type SvixVerifier struct {
	wh *svix.Webhook
}

// NewSvixVerifier builds a verifier from the provider signing secret
// (the "whsec_..." value from the provider dashboard).
func NewSvixVerifier(secret string) (*SvixVerifier, error) {
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("svix verifier: %w", err)
	}
	return &SvixVerifier{wh: wh}, nil
}

// Verify checks the signature over the exact raw payload bytes and the
// svix-id/svix-timestamp/svix-signature headers.
func (v *SvixVerifier) Verify(payload []byte, headers http.Header) error {
	return v.wh.Verify(payload, headers)
}
