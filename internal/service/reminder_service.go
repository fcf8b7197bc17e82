package service

import (
	"context"
	"errors"
	"fmt"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrReminderNotFound = errors.New("reminder not found")

// ReminderService manages scheduled reminders and alerts. Create, update
// and delete append a category-dependent notification; toggling isActive
// does not.
type ReminderService interface {
	Create(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Reminder, error)
	Update(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)
	SetActive(ctx context.Context, id primitive.ObjectID, isActive bool) (*domain.Reminder, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type reminderService struct {
	reminderRepo repository.ReminderRepository
	notifier     NotificationService
}

// NewReminderService creates a new instance of reminderService.
func NewReminderService(reminderRepo repository.ReminderRepository, notifier NotificationService) ReminderService {
	return &reminderService{
		reminderRepo: reminderRepo,
		notifier:     notifier,
	}
}

// categoryLabel is the display word used in side-effect notifications.
func categoryLabel(category domain.ReminderCategory) string {
	if category == domain.CategoryAlert {
		return "Alert"
	}
	return "Reminder"
}

// notificationType maps a reminder category onto the feed variant.
func notificationType(category domain.ReminderCategory) domain.NotificationType {
	if category == domain.CategoryAlert {
		return domain.NotificationAlert
	}
	return domain.NotificationReminder
}

// Create validates and inserts a reminder or alert.
func (s *reminderService) Create(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	if reminder.UserID == primitive.NilObjectID || reminder.Title == "" || reminder.Date.IsZero() {
		return nil, ErrValidationFailed
	}
	if reminder.Type == "" {
		reminder.Type = domain.ReminderWorkout
	}
	if reminder.Category == "" {
		reminder.Category = domain.CategoryReminder
	}
	reminder.Priority = domain.EffectivePriority(reminder.Category, reminder.Priority)
	reminder.IsActive = true
	reminder.Notified = false

	id, err := s.reminderRepo.Create(ctx, reminder)
	if err != nil {
		return nil, err
	}
	reminder.ID = id

	message := fmt.Sprintf("%s set: %s on %s",
		categoryLabel(reminder.Category), reminder.Title, reminder.Date.Format("Jan 2, 2006 3:04 PM"))
	if reminder.IsAlert() {
		message = "🚨 " + message
	} else {
		message = "⏰ " + message
	}
	if _, err := s.notifier.Notify(ctx, reminder.UserID, notificationType(reminder.Category), message); err != nil {
		return nil, err
	}

	return reminder, nil
}

// ListByUser returns all reminders for a user, newest date first.
func (s *reminderService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Reminder, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrValidationFailed
	}
	return s.reminderRepo.GetByUserID(ctx, userID)
}

// Update replaces a reminder's fields. Rescheduling resets the notified
// flag so the scanner fires again at the new time.
func (s *reminderService) Update(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	if reminder.Title == "" || reminder.Date.IsZero() {
		return nil, ErrValidationFailed
	}

	existing, err := s.reminderRepo.GetByID(ctx, reminder.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}
	reminder.UserID = existing.UserID

	if reminder.Category == "" {
		reminder.Category = existing.Category
	}
	reminder.Priority = domain.EffectivePriority(reminder.Category, reminder.Priority)

	// isActive is only mutated through SetActive; an update must not
	// silently flip it.
	reminder.IsActive = existing.IsActive

	reminder.Notified = existing.Notified
	if !reminder.Date.Equal(existing.Date) {
		reminder.Notified = false
	}

	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}

	message := fmt.Sprintf("%s updated: %s", categoryLabel(reminder.Category), reminder.Title)
	if _, err := s.notifier.Notify(ctx, reminder.UserID, notificationType(reminder.Category), message); err != nil {
		return nil, err
	}

	return s.reminderRepo.GetByID(ctx, reminder.ID)
}

// SetActive toggles only the isActive flag. No notification side effect.
func (s *reminderService) SetActive(ctx context.Context, id primitive.ObjectID, isActive bool) (*domain.Reminder, error) {
	reminder, err := s.reminderRepo.SetActive(ctx, id, isActive)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}
	return reminder, nil
}

// Delete removes a reminder and records the removal in the feed.
func (s *reminderService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.reminderRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReminderNotFound
		}
		return err
	}

	message := fmt.Sprintf("%s removed: %s", categoryLabel(deleted.Category), deleted.Title)
	if _, err := s.notifier.Notify(ctx, deleted.UserID, notificationType(deleted.Category), message); err != nil {
		return err
	}
	return nil
}
