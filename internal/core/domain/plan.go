package domain

import (
	"errors"
	"time"
)

// ErrActivePlanConflict is returned when the storage-layer uniqueness
// backstop rejects a second active plan for the same user.
var ErrActivePlanConflict = errors.New("user already has an active plan")

// Routine is a single exercise routine within a workout day.
type Routine struct {
	Name        string   `json:"name" bson:"name"`
	Sets        int      `json:"sets" bson:"sets"`
	Reps        int      `json:"reps" bson:"reps"`
	Duration    *string  `json:"duration,omitempty" bson:"duration,omitempty"`
	Description *string  `json:"description,omitempty" bson:"description,omitempty"`
	Exercises   []string `json:"exercises,omitempty" bson:"exercises,omitempty"`
}

// DayExercises groups the routines scheduled for one day of the week.
type DayExercises struct {
	Day      string    `json:"day" bson:"day"`
	Routines []Routine `json:"routines" bson:"routines"`
}

// WorkoutPlan is the workout half of a fitness plan.
type WorkoutPlan struct {
	Schedule  []string       `json:"schedule" bson:"schedule"`
	Exercises []DayExercises `json:"exercises" bson:"exercises"`
}

// Meal is one meal in a diet plan.
type Meal struct {
	Name  string   `json:"name" bson:"name"`
	Foods []string `json:"foods" bson:"foods"`
}

// DietPlan is the nutrition half of a fitness plan.
type DietPlan struct {
	DailyCalories int    `json:"daily_calories" bson:"daily_calories"`
	Meals         []Meal `json:"meals" bson:"meals"`
}

// Plan is one fitness program (workout + diet) belonging to a User.
// UserID references the owning user's internal identifier, never the clerk
// id. At most one Plan per user has IsActive=true at any observable instant;
// plans are deactivated, never deleted.
type Plan struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	UserID      string      `json:"user_id" bson:"user_id"`
	Name        string      `json:"name" bson:"name"`
	WorkoutPlan WorkoutPlan `json:"workout_plan" bson:"workout_plan"`
	DietPlan    DietPlan    `json:"diet_plan" bson:"diet_plan"`
	IsActive    bool        `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}
