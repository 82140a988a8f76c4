package handler

import (
	"github.com/flexfit/fitness-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreatePlanInput(req createPlanRequest) ports.CreatePlanInput {
	return ports.CreatePlanInput{
		ClerkID:     req.UserID,
		Name:        req.Name,
		WorkoutPlan: toWorkoutPlanInput(req.WorkoutPlan),
		DietPlan:    toDietPlanInput(req.DietPlan),
		IsActive:    req.IsActive,
	}
}

func toWorkoutPlanInput(w workoutPlanRequest) ports.WorkoutPlanInput {
	days := make([]ports.DayExercisesInput, len(w.Exercises))
	for i, d := range w.Exercises {
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
	return ports.WorkoutPlanInput{Schedule: w.Schedule, Exercises: days}
}

func toDietPlanInput(d dietPlanRequest) ports.DietPlanInput {
	meals := make([]ports.MealInput, len(d.Meals))
	for i, m := range d.Meals {
		meals[i] = ports.MealInput{Name: m.Name, Foods: m.Foods}
	}
	return ports.DietPlanInput{DailyCalories: d.DailyCalories, Meals: meals}
}

// --- Service result → HTTP response ---

func toPlanResponse(p ports.PlanDetail) planResponse {
	return planResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		WorkoutPlan: toWorkoutPlanResponse(p.WorkoutPlan),
		DietPlan:    toDietPlanResponse(p.DietPlan),
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt.UTC(),
	}
}

func toWorkoutPlanResponse(w ports.WorkoutPlanInput) workoutPlanResponse {
	days := make([]dayExercisesResponse, len(w.Exercises))
	for i, d := range w.Exercises {
		routines := make([]routineResponse, len(d.Routines))
		for j, r := range d.Routines {
			routines[j] = routineResponse{
				Name:        r.Name,
				Sets:        r.Sets,
				Reps:        r.Reps,
				Duration:    r.Duration,
				Description: r.Description,
				Exercises:   r.Exercises,
			}
		}
		days[i] = dayExercisesResponse{Day: d.Day, Routines: routines}
	}
	return workoutPlanResponse{Schedule: w.Schedule, Exercises: days}
}

func toDietPlanResponse(d ports.DietPlanInput) dietPlanResponse {
	meals := make([]mealResponse, len(d.Meals))
	for i, m := range d.Meals {
		meals[i] = mealResponse{Name: m.Name, Foods: m.Foods}
	}
	return dietPlanResponse{DailyCalories: d.DailyCalories, Meals: meals}
}
