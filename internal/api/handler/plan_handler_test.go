package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flexfit/fitness-api/internal/core/domain"
	"github.com/flexfit/fitness-api/internal/core/ports"
)

type stubPlanService struct {
	createFn func(ctx context.Context, input ports.CreatePlanInput) (string, error)
	listFn   func(ctx context.Context, userID string) ([]ports.PlanDetail, error)
}

func (s *stubPlanService) Create(ctx context.Context, input ports.CreatePlanInput) (string, error) {
	return s.createFn(ctx, input)
}

func (s *stubPlanService) ListByUser(ctx context.Context, userID string) ([]ports.PlanDetail, error) {
	return s.listFn(ctx, userID)
}

const validPlanBody = `{
	"userId": "user_abc",
	"name": "Hypertrophy Block",
	"isActive": true,
	"workoutPlan": {
		"schedule": ["Monday", "Thursday"],
		"exercises": [
			{"day": "Monday", "routines": [
				{"name": "Squat", "sets": 5, "reps": 5, "description": "barbell back squat"}
			]},
			{"day": "Thursday", "routines": [
				{"name": "Deadlift", "sets": 3, "reps": 5}
			]}
		]
	},
	"dietPlan": {
		"dailyCalories": 2800,
		"meals": [
			{"name": "Breakfast", "foods": ["oats", "eggs"]},
			{"name": "Dinner", "foods": ["rice", "chicken"]}
		]
	}
}`

func newPlanContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPlanHandler_Create_Success(t *testing.T) {
	var got ports.CreatePlanInput
	stub := &stubPlanService{
		createFn: func(ctx context.Context, input ports.CreatePlanInput) (string, error) {
			got = input
			return "plan_1", nil
		},
	}
	h := NewPlanHandler(stub)

	c, rec := newPlanContext(t, http.MethodPost, "/v1/plans", validPlanBody)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["planId"] != "plan_1" {
		t.Fatalf("unexpected planId: %q", resp["planId"])
	}

	if got.ClerkID != "user_abc" || got.Name != "Hypertrophy Block" || !got.IsActive {
		t.Fatalf("unexpected input: %+v", got)
	}
	if len(got.WorkoutPlan.Exercises) != 2 || got.WorkoutPlan.Exercises[0].Routines[0].Sets != 5 {
		t.Fatalf("workout plan not mapped: %+v", got.WorkoutPlan)
	}
	if got.DietPlan.DailyCalories != 2800 || len(got.DietPlan.Meals) != 2 {
		t.Fatalf("diet plan not mapped: %+v", got.DietPlan)
	}
}

func TestPlanHandler_Create_InvalidJSON(t *testing.T) {
	stub := &stubPlanService{
		createFn: func(ctx context.Context, input ports.CreatePlanInput) (string, error) {
			t.Fatal("should not be called")
			return "", nil
		},
	}
	h := NewPlanHandler(stub)

	c, _ := newPlanContext(t, http.MethodPost, "/v1/plans", "not-json")
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPlanHandler_Create_ValidationFailure(t *testing.T) {
	stub := &stubPlanService{
		createFn: func(ctx context.Context, input ports.CreatePlanInput) (string, error) {
			t.Fatal("should not be called")
			return "", nil
		},
	}
	h := NewPlanHandler(stub)

	// Missing name and empty meal list.
	body := `{"userId":"user_abc","workoutPlan":{"schedule":["Mon"],"exercises":[{"day":"Mon","routines":[{"name":"Squat","sets":3,"reps":8}]}]},"dietPlan":{"dailyCalories":2000,"meals":[]}}`
	c, _ := newPlanContext(t, http.MethodPost, "/v1/plans", body)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestPlanHandler_Create_UnknownUserPropagates(t *testing.T) {
	stub := &stubPlanService{
		createFn: func(ctx context.Context, input ports.CreatePlanInput) (string, error) {
			return "", domain.ErrUserNotFound
		},
	}
	h := NewPlanHandler(stub)

	c, _ := newPlanContext(t, http.MethodPost, "/v1/plans", validPlanBody)
	err := h.Create(c)

	// The central error handler maps this to 404.
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestPlanHandler_Create_ConflictPropagates(t *testing.T) {
	stub := &stubPlanService{
		createFn: func(ctx context.Context, input ports.CreatePlanInput) (string, error) {
			return "", domain.ErrActivePlanConflict
		},
	}
	h := NewPlanHandler(stub)

	c, _ := newPlanContext(t, http.MethodPost, "/v1/plans", validPlanBody)
	if err := h.Create(c); !errors.Is(err, domain.ErrActivePlanConflict) {
		t.Fatalf("expected ErrActivePlanConflict, got %v", err)
	}
}

func TestPlanHandler_ListByUser_NewestFirst(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubPlanService{
		listFn: func(ctx context.Context, userID string) ([]ports.PlanDetail, error) {
			if userID != "64f0c0ffee" {
				t.Fatalf("unexpected user id: %q", userID)
			}
			return []ports.PlanDetail{
				{ID: "p2", UserID: userID, Name: "Cut", IsActive: true, CreatedAt: now},
				{ID: "p1", UserID: userID, Name: "Bulk", IsActive: false, CreatedAt: now.Add(-24 * time.Hour)},
			}, nil
		},
	}
	h := NewPlanHandler(stub)

	c, rec := newPlanContext(t, http.MethodGet, "/", "")
	c.SetPath("/v1/users/:id/plans")
	c.SetParamNames("id")
	c.SetParamValues("64f0c0ffee")

	if err := h.ListByUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listPlansResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0].ID != "p2" || resp.Data[1].ID != "p1" {
		t.Fatalf("unexpected order: %+v", resp.Data)
	}
	if !resp.Data[0].IsActive || resp.Data[1].IsActive {
		t.Fatalf("active flags lost in mapping: %+v", resp.Data)
	}
}

func TestPlanHandler_ListByUser_EmptyIsEmptyArray(t *testing.T) {
	stub := &stubPlanService{
		listFn: func(ctx context.Context, userID string) ([]ports.PlanDetail, error) {
			return nil, nil
		},
	}
	h := NewPlanHandler(stub)

	c, rec := newPlanContext(t, http.MethodGet, "/", "")
	c.SetPath("/v1/users/:id/plans")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.ListByUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("expected empty data array, got %q", rec.Body.String())
	}
}
