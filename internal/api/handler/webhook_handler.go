package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flexfit/fitness-api/internal/api/metrics"
	"github.com/flexfit/fitness-api/internal/core/domain"
	"github.com/flexfit/fitness-api/internal/core/ports"
)

// WebhookHandler receives identity-provider webhook deliveries.
type WebhookHandler struct {
	service ports.WebhookService
}

func NewWebhookHandler(service ports.WebhookService) *WebhookHandler {
	return &WebhookHandler{service: service}
}

// Receive handles POST /clerk-webhook.
//
// The provider signs the exact body bytes, so the payload is read raw and
// passed through untouched; binding happens only after verification, inside
// the service.
//
// @Summary      Receive an identity-provider webhook
// @Tags         webhooks
// @Accept       json
// @Produce      plain
// @Param        svix-id         header  string  true  "Delivery message id"
// @Param        svix-timestamp  header  string  true  "Delivery timestamp"
// @Param        svix-signature  header  string  true  "Delivery signature"
// @Success      200  {string}  string  "Webhook received"
// @Failure      400  {string}  string  "missing headers, bad signature, or unusable payload"
// @Failure      500  {string}  string  "verification unconfigured or store failure"
// @Router       /clerk-webhook [post]
func (h *WebhookHandler) Receive(c echo.Context) error {
	req := c.Request()

	messageID := req.Header.Get("svix-id")
	timestamp := req.Header.Get("svix-timestamp")
	signature := req.Header.Get("svix-signature")
	if messageID == "" || timestamp == "" || signature == "" {
		metrics.WebhookErrorsTotal.WithLabelValues("missing_headers").Inc()
		return c.String(http.StatusBadRequest, "Missing svix headers")
	}

	payload, err := io.ReadAll(req.Body)
	if err != nil {
		metrics.WebhookErrorsTotal.WithLabelValues("malformed_payload").Inc()
		return c.String(http.StatusBadRequest, "Could not read body")
	}

	result, err := h.service.HandleEvent(req.Context(), payload, messageID, req.Header)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWebhookNotConfigured):
			metrics.WebhookErrorsTotal.WithLabelValues("not_configured").Inc()
			return c.String(http.StatusInternalServerError, "Webhook secret not configured")
		case errors.Is(err, domain.ErrInvalidSignature):
			metrics.WebhookErrorsTotal.WithLabelValues("invalid_signature").Inc()
			return c.String(http.StatusBadRequest, "Invalid signature")
		case errors.Is(err, domain.ErrMalformedPayload):
			metrics.WebhookErrorsTotal.WithLabelValues("malformed_payload").Inc()
			return c.String(http.StatusBadRequest, "Invalid payload")
		case errors.Is(err, domain.ErrMissingEmail):
			metrics.WebhookErrorsTotal.WithLabelValues("malformed_payload").Inc()
			return c.String(http.StatusBadRequest, "No email found")
		default:
			// Store failure: signal the provider to redeliver.
			metrics.WebhookErrorsTotal.WithLabelValues("sync_failed").Inc()
			return c.String(http.StatusInternalServerError, "Failed to process webhook")
		}
	}

	metrics.WebhookEventsTotal.WithLabelValues(result.EventType, webhookResultLabel(result)).Inc()
	return c.String(http.StatusOK, "Webhook received")
}

func webhookResultLabel(r *ports.WebhookResult) string {
	switch {
	case r.Duplicate:
		return "duplicate"
	case r.Handled:
		return "synced"
	default:
		return "ignored"
	}
}
