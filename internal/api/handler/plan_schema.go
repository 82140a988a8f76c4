package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type routineRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Sets        int      `json:"sets"        validate:"required,gt=0"`
	Reps        int      `json:"reps"        validate:"required,gt=0"`
	Duration    *string  `json:"duration,omitempty"`
	Description *string  `json:"description,omitempty"`
	Exercises   []string `json:"exercises,omitempty"`
}

type dayExercisesRequest struct {
	Day      string           `json:"day"      validate:"required"`
	Routines []routineRequest `json:"routines" validate:"required,min=1,dive"`
}

type workoutPlanRequest struct {
	Schedule  []string              `json:"schedule"  validate:"required,min=1"`
	Exercises []dayExercisesRequest `json:"exercises" validate:"required,min=1,dive"`
}

type mealRequest struct {
	Name  string   `json:"name"  validate:"required"`
	Foods []string `json:"foods" validate:"required,min=1"`
}

type dietPlanRequest struct {
	DailyCalories int           `json:"dailyCalories" validate:"required,gt=0"`
	Meals         []mealRequest `json:"meals"         validate:"required,min=1,dive"`
}

type createPlanRequest struct {
	UserID      string             `json:"userId"      validate:"required"`
	Name        string             `json:"name"        validate:"required"`
	WorkoutPlan workoutPlanRequest `json:"workoutPlan" validate:"required"`
	DietPlan    dietPlanRequest    `json:"dietPlan"    validate:"required"`
	IsActive    bool               `json:"isActive"`
}

// --- Response types ---
//
// Response-only types owned by the transport layer, kept separate from
// ports/domain types so the JSON contract is not coupled to internal
// service changes.

type routineResponse struct {
	Name        string   `json:"name"`
	Sets        int      `json:"sets"`
	Reps        int      `json:"reps"`
	Duration    *string  `json:"duration,omitempty"`
	Description *string  `json:"description,omitempty"`
	Exercises   []string `json:"exercises,omitempty"`
}

type dayExercisesResponse struct {
	Day      string            `json:"day"`
	Routines []routineResponse `json:"routines"`
}

type workoutPlanResponse struct {
	Schedule  []string               `json:"schedule"`
	Exercises []dayExercisesResponse `json:"exercises"`
}

type mealResponse struct {
	Name  string   `json:"name"`
	Foods []string `json:"foods"`
}

type dietPlanResponse struct {
	DailyCalories int            `json:"dailyCalories"`
	Meals         []mealResponse `json:"meals"`
}

type createPlanResponse struct {
	PlanID string `json:"planId"`
}

type planResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	Name        string              `json:"name"`
	WorkoutPlan workoutPlanResponse `json:"workoutPlan"`
	DietPlan    dietPlanResponse    `json:"dietPlan"`
	IsActive    bool                `json:"isActive"`
	CreatedAt   time.Time           `json:"createdAt"`
}

type listPlansResponse struct {
	Data []planResponse `json:"data"`
}

// --- User schema ---

type updateUserRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Email string  `json:"email" validate:"required,email"`
	Image *string `json:"image,omitempty"`
}

type userResponse struct {
	ID        string    `json:"id"`
	ClerkID   string    `json:"clerkId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
