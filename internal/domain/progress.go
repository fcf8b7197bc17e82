package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Measurements are body measurements in the user's unit system.
type Measurements struct {
	Chest float64 `bson:"chest,omitempty" json:"chest,omitempty"`
	Waist float64 `bson:"waist,omitempty" json:"waist,omitempty"`
}

// Performance captures simple performance markers for a logged date.
type Performance struct {
	RunTime    float64 `bson:"runTime,omitempty" json:"runTime,omitempty"`
	LiftWeight float64 `bson:"liftWeight,omitempty" json:"liftWeight,omitempty"`
}

// ProgressEntry is one body-progress record. Multiple entries per date
// are allowed; no uniqueness is enforced.
type ProgressEntry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Date         time.Time          `bson:"date" json:"date"`
	Weight       float64            `bson:"weight,omitempty" json:"weight,omitempty"`
	Measurements Measurements       `bson:"measurements,omitempty" json:"measurements,omitempty"`
	Performance  Performance        `bson:"performance,omitempty" json:"performance,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
