package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/flexfit/fitness-api/internal/core/domain"
	"github.com/flexfit/fitness-api/internal/core/ports"
)

type stubWebhookService struct {
	result    *ports.WebhookResult
	err       error
	calls     int
	messageID string
}

func (s *stubWebhookService) HandleEvent(ctx context.Context, payload []byte, messageID string, headers http.Header) (*ports.WebhookResult, error) {
	s.calls++
	s.messageID = messageID
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func webhookRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/clerk-webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("svix-id", "msg_1")
	req.Header.Set("svix-timestamp", "1700000000")
	req.Header.Set("svix-signature", "v1,abc")
	return req
}

func TestWebhookHandler_Success(t *testing.T) {
	e := echo.New()
	stub := &stubWebhookService{result: &ports.WebhookResult{EventType: "user.created", Handled: true}}
	h := NewWebhookHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(webhookRequest(`{"type":"user.created","data":{}}`), rec)

	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "Webhook received" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
	if stub.calls != 1 || stub.messageID != "msg_1" {
		t.Fatalf("service not called with message id: calls=%d id=%q", stub.calls, stub.messageID)
	}
}

func TestWebhookHandler_MissingHeaders(t *testing.T) {
	e := echo.New()
	stub := &stubWebhookService{result: &ports.WebhookResult{}}
	h := NewWebhookHandler(stub)

	for _, header := range []string{"svix-id", "svix-timestamp", "svix-signature"} {
		req := webhookRequest(`{}`)
		req.Header.Del(header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := h.Receive(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("missing %s: expected 400, got %d", header, rec.Code)
		}
		if rec.Body.String() != "Missing svix headers" {
			t.Fatalf("missing %s: unexpected body %q", header, rec.Body.String())
		}
	}
	if stub.calls != 0 {
		t.Fatalf("service should never run without full headers, got %d calls", stub.calls)
	}
}

func TestWebhookHandler_NotConfigured(t *testing.T) {
	e := echo.New()
	h := NewWebhookHandler(&stubWebhookService{err: domain.ErrWebhookNotConfigured})

	rec := httptest.NewRecorder()
	c := e.NewContext(webhookRequest(`{}`), rec)

	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestWebhookHandler_InvalidSignature(t *testing.T) {
	e := echo.New()
	h := NewWebhookHandler(&stubWebhookService{err: domain.ErrInvalidSignature})

	rec := httptest.NewRecorder()
	c := e.NewContext(webhookRequest(`{}`), rec)

	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec.Body.String() != "Invalid signature" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestWebhookHandler_MissingEmail(t *testing.T) {
	e := echo.New()
	h := NewWebhookHandler(&stubWebhookService{err: domain.ErrMissingEmail})

	rec := httptest.NewRecorder()
	c := e.NewContext(webhookRequest(`{"type":"user.created","data":{}}`), rec)

	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestWebhookHandler_StoreFailureSignalsRetry(t *testing.T) {
	e := echo.New()
	h := NewWebhookHandler(&stubWebhookService{err: context.DeadlineExceeded})

	rec := httptest.NewRecorder()
	c := e.NewContext(webhookRequest(`{"type":"user.created","data":{}}`), rec)

	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// 500 tells the provider to redeliver.
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestWebhookHandler_DuplicateStillAcknowledged(t *testing.T) {
	e := echo.New()
	stub := &stubWebhookService{result: &ports.WebhookResult{EventType: "user.created", Duplicate: true}}
	h := NewWebhookHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(webhookRequest(`{"type":"user.created","data":{}}`), rec)

	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "Webhook received" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestWebhookResultLabel(t *testing.T) {
	cases := []struct {
		result ports.WebhookResult
		want   string
	}{
		{ports.WebhookResult{Handled: true}, "synced"},
		{ports.WebhookResult{Duplicate: true}, "duplicate"},
		{ports.WebhookResult{Handled: true, Duplicate: true}, "duplicate"},
		{ports.WebhookResult{}, "ignored"},
	}
	for _, tc := range cases {
		if got := webhookResultLabel(&tc.result); got != tc.want {
			t.Fatalf("label for %+v: got %q, want %q", tc.result, got, tc.want)
		}
	}
}
