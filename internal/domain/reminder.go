package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReminderType describes what a reminder is about.
type ReminderType string

const (
	ReminderWorkout     ReminderType = "workout"
	ReminderMeal        ReminderType = "meal"
	ReminderGoal        ReminderType = "goal"
	ReminderAppointment ReminderType = "appointment"
	ReminderMedication  ReminderType = "medication"
	ReminderOther       ReminderType = "other"
)

// ReminderCategory splits the entity into plain reminders and alerts.
// Alerts carry a priority; reminders do not.
type ReminderCategory string

const (
	CategoryReminder ReminderCategory = "reminder"
	CategoryAlert    ReminderCategory = "alert"
)

// ReminderPriority is only meaningful when the category is alert.
type ReminderPriority string

const (
	PriorityLow    ReminderPriority = "low"
	PriorityMedium ReminderPriority = "medium"
	PriorityHigh   ReminderPriority = "high"
	PriorityNone   ReminderPriority = "none"
)

// Reminder is a scheduled one-off reminder or alert. Date carries both
// the scheduling instant and the display timestamp.
type Reminder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Title     string             `bson:"title" json:"title"`
	Date      time.Time          `bson:"date" json:"date"`
	Type      ReminderType       `bson:"type" json:"type"`
	Category  ReminderCategory   `bson:"category" json:"category"`
	Priority  ReminderPriority   `bson:"priority" json:"priority"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	Notified  bool               `bson:"notified" json:"notified"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsAlert reports whether the reminder is in the alert category.
func (r *Reminder) IsAlert() bool {
	return r.Category == CategoryAlert
}

// EffectivePriority forces priority to none for plain reminders and
// defaults alerts without one to medium.
func EffectivePriority(category ReminderCategory, priority ReminderPriority) ReminderPriority {
	if category != CategoryAlert {
		return PriorityNone
	}
	if priority == "" || priority == PriorityNone {
		return PriorityMedium
	}
	return priority
}
