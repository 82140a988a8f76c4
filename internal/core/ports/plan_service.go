package ports

import (
	"context"
	"time"
)

// RoutineInput is a single routine in a workout day.
type RoutineInput struct {
	Name        string
	Sets        int
	Reps        int
	Duration    *string
	Description *string
	Exercises   []string
}

// DayExercisesInput groups routines for one scheduled day.
type DayExercisesInput struct {
	Day      string
	Routines []RoutineInput
}

// WorkoutPlanInput is the workout half of a plan payload.
type WorkoutPlanInput struct {
	Schedule  []string
	Exercises []DayExercisesInput
}

// MealInput is one meal in a diet plan payload.
type MealInput struct {
	Name  string
	Foods []string
}

// DietPlanInput is the nutrition half of a plan payload.
type DietPlanInput struct {
	DailyCalories int
	Meals         []MealInput
}

// CreatePlanInput carries all data needed to create a plan. ClerkID is the
// external identifier of the owning user; the service resolves it to the
// internal id.
type CreatePlanInput struct {
	ClerkID     string
	Name        string
	WorkoutPlan WorkoutPlanInput
	DietPlan    DietPlanInput
	IsActive    bool
}

// PlanDetail is the full plan view returned by list/read operations.
type PlanDetail struct {
	ID          string
	UserID      string
	Name        string
	WorkoutPlan WorkoutPlanInput
	DietPlan    DietPlanInput
	IsActive    bool
	CreatedAt   time.Time
}

// PlanService defines use-case operations for fitness plans.
type PlanService interface {
	// Create deactivates the user's currently active plans and inserts the
	// new plan as the sole active one (unless IsActive is false, in which
	// case the user ends with zero active plans). Returns the new plan's id.
	Create(ctx context.Context, input CreatePlanInput) (string, error)

	// ListByUser returns the user's plans, most recent first. The id is the
	// internal user identifier, not the clerk id.
	ListByUser(ctx context.Context, userID string) ([]PlanDetail, error)
}
