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

// PlanService enforces the at-most-one-active-plan-per-user invariant.
type PlanService struct {
	users ports.UserRepository
	plans ports.PlanRepository
	log   zerolog.Logger
}

func NewPlanService(users ports.UserRepository, plans ports.PlanRepository, log zerolog.Logger) *PlanService {
	return &PlanService{users: users, plans: plans, log: log}
}

// Create resolves the owning user by clerk id, deactivates every plan that
// is currently active for that user, then inserts the new plan. The
// deactivation pass completes before the insert: a concurrent reader may
// briefly observe zero active plans, never two. The caller controls the new
// plan's IsActive flag; false leaves the user with no active plan.
func (s *PlanService) Create(ctx context.Context, input ports.CreatePlanInput) (string, error) {
	user, err := s.users.FindByClerkID(ctx, input.ClerkID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("create plan: %w", err)
	}

	deactivated, err := s.plans.DeactivateActive(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("create plan: deactivate active plans: %w", err)
	}

	plan := &domain.Plan{
		UserID:      user.ID,
		Name:        input.Name,
		WorkoutPlan: toWorkoutPlan(input.WorkoutPlan),
		DietPlan:    toDietPlan(input.DietPlan),
		IsActive:    input.IsActive,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.plans.Insert(ctx, plan)
	if err != nil {
		return "", fmt.Errorf("create plan: %w", err)
	}

	s.log.Info().
		Str("plan_id", id).
		Str("clerk_id", input.ClerkID).
		Bool("is_active", input.IsActive).
		Int64("deactivated", deactivated).
		Msg("plan created")

	return id, nil
}

// ListByUser returns the user's plans, most recent first.
func (s *PlanService) ListByUser(ctx context.Context, userID string) ([]ports.PlanDetail, error) {
	plans, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	out := make([]ports.PlanDetail, len(plans))
	for i, p := range plans {
		out[i] = toPlanDetail(p)
	}
	return out, nil
}

// --- Input ↔ domain mapping ---

func toWorkoutPlan(in ports.WorkoutPlanInput) domain.WorkoutPlan {
	days := make([]domain.DayExercises, len(in.Exercises))
	for i, d := range in.Exercises {
		routines := make([]domain.Routine, len(d.Routines))
		for j, r := range d.Routines {
			routines[j] = domain.Routine{
				Name:        r.Name,
				Sets:        r.Sets,
				Reps:        r.Reps,
				Duration:    r.Duration,
				Description: r.Description,
				Exercises:   r.Exercises,
			}
		}
		days[i] = domain.DayExercises{Day: d.Day, Routines: routines}
	}
	return domain.WorkoutPlan{Schedule: in.Schedule, Exercises: days}
}

func toDietPlan(in ports.DietPlanInput) domain.DietPlan {
	meals := make([]domain.Meal, len(in.Meals))
	for i, m := range in.Meals {
		meals[i] = domain.Meal{Name: m.Name, Foods: m.Foods}
	}
	return domain.DietPlan{DailyCalories: in.DailyCalories, Meals: meals}
}

func toPlanDetail(p *domain.Plan) ports.PlanDetail {
	days := make([]ports.DayExercisesInput, len(p.WorkoutPlan.Exercises))
	for i, d := range p.WorkoutPlan.Exercises {
		routines := make([]ports.RoutineInput, len(d.Routines))
		for j, r := range d.Routines {
			routines[j] = ports.RoutineInput{
				Name:        r.Name,
				Sets:        r.Sets,
				Reps:        r.Reps,
				Duration:    r.Duration,
				Description: r.Description,
				Exercises:   r.Exercises,
			}
		}
		days[i] = ports.DayExercisesInput{Day: d.Day, Routines: routines}
	}

	meals := make([]ports.MealInput, len(p.DietPlan.Meals))
	for i, m := range p.DietPlan.Meals {
		meals[i] = ports.MealInput{Name: m.Name, Foods: m.Foods}
	}

	return ports.PlanDetail{
		ID:     p.ID,
		UserID: p.UserID,
		Name:   p.Name,
		WorkoutPlan: ports.WorkoutPlanInput{
			Schedule:  p.WorkoutPlan.Schedule,
			Exercises: days,
		},
		DietPlan: ports.DietPlanInput{
			DailyCalories: p.DietPlan.DailyCalories,
			Meals:         meals,
		},
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}
