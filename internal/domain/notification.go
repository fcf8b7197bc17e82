package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType is the closed set of notification variants. Formatting
// sites switch over it exhaustively.
type NotificationType string

const (
	NotificationActivity NotificationType = "activity"
	NotificationReminder NotificationType = "reminder"
	NotificationAlert    NotificationType = "alert"
	NotificationGoal     NotificationType = "goal"
)

// Valid reports whether t is one of the known variants.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationActivity, NotificationReminder, NotificationAlert, NotificationGoal:
		return true
	}
	return false
}

// DefaultTitle returns the feed heading for each variant.
func (t NotificationType) DefaultTitle() string {
	switch t {
	case NotificationActivity:
		return "Activity"
	case NotificationReminder:
		return "Reminder"
	case NotificationAlert:
		return "Alert"
	case NotificationGoal:
		return "Goal achieved"
	default:
		return "Notification"
	}
}

// Notification is a per-user event-log entry. Append-only except for
// IsRead flips and deletes.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Type      NotificationType   `bson:"type" json:"type"`
	Message   string             `bson:"message" json:"message"`
	IsRead    bool               `bson:"isRead" json:"isRead"`
	Date      time.Time          `bson:"date" json:"date"` // Defaults to creation time
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
