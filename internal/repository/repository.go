package repository

import (
	"context"
	"time"

	"fitpulse/fitness-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound       = RepositoryError("not found")
	ErrDuplicateEmail = RepositoryError("email already registered")
	ErrUpdateFailed   = RepositoryError("update failed")
	ErrDeleteFailed   = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, name, email, image string) (*domain.User, error)
	UpdatePreferences(ctx context.Context, id primitive.ObjectID, prefs domain.Preferences) (*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// FindByReminderTime returns users with push notifications enabled whose
	// workout or meal reminder preference equals the given "HH:MM" string.
	FindByReminderTime(ctx context.Context, hhmm string) ([]domain.User, error)
}

// WorkoutRepository defines the interface for interacting with workout entries.
type WorkoutRepository interface {
	Create(ctx context.Context, entry *domain.WorkoutEntry) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutEntry, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutEntry, error)
	Update(ctx context.Context, entry *domain.WorkoutEntry) error
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutEntry, error)
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error
}

// NutritionRepository defines the interface for interacting with nutrition logs.
type NutritionRepository interface {
	Create(ctx context.Context, log *domain.NutritionLog) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.NutritionLog, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.NutritionLog, error)
	Update(ctx context.Context, log *domain.NutritionLog) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error
}

// ProgressRepository defines the interface for interacting with progress entries.
type ProgressRepository interface {
	Create(ctx context.Context, entry *domain.ProgressEntry) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgressEntry, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error)
	Update(ctx context.Context, entry *domain.ProgressEntry) (*domain.ProgressEntry, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error
}

// GoalRepository defines the interface for interacting with goals.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Goal, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ReminderRepository defines the interface for interacting with reminders.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.Reminder) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Reminder, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Reminder, error)
	Update(ctx context.Context, reminder *domain.Reminder) error
	SetActive(ctx context.Context, id primitive.ObjectID, isActive bool) (*domain.Reminder, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.Reminder, error)
	// FindDue returns active reminders scheduled at or before now that have
	// not been notified yet.
	FindDue(ctx context.Context, now time.Time) ([]domain.Reminder, error)
	MarkNotified(ctx context.Context, id primitive.ObjectID) error
}

// NotificationRepository defines the interface for interacting with notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Notification, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) (*domain.Notification, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// FeedbackRepository defines the interface for interacting with feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]domain.Feedback, error)
}
