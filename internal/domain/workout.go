package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutCategory groups workout entries for filtering and charts.
type WorkoutCategory string

const (
	CategoryStrength WorkoutCategory = "Strength"
	CategoryCardio   WorkoutCategory = "Cardio"
	CategoryYoga     WorkoutCategory = "Yoga"
	CategoryHIIT     WorkoutCategory = "HIIT"
	CategoryMobility WorkoutCategory = "Mobility"
	CategoryOther    WorkoutCategory = "Other"
)

// WorkoutEntry is a single logged exercise session.
type WorkoutEntry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	ExerciseName string             `bson:"exerciseName" json:"exerciseName"`
	Sets         int                `bson:"sets" json:"sets"`
	Reps         int                `bson:"reps" json:"reps"`
	Weight       float64            `bson:"weight,omitempty" json:"weight,omitempty"`
	Category     WorkoutCategory    `bson:"category" json:"category"`
	Tags         string             `bson:"tags,omitempty" json:"tags,omitempty"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Date         time.Time          `bson:"date" json:"date"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
