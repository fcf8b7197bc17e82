package service

import (
	"context"
	"errors"
	"fmt"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrValidationFailed = errors.New("validation failed")
)

// WorkoutService manages workout entries. Create, update and delete each
// append an activity notification to the owner's feed.
type WorkoutService interface {
	Create(ctx context.Context, entry *domain.WorkoutEntry) (*domain.WorkoutEntry, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutEntry, error)
	Update(ctx context.Context, entry *domain.WorkoutEntry) (*domain.WorkoutEntry, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
	notifier    NotificationService
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, notifier NotificationService) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		notifier:    notifier,
	}
}

// Create validates and inserts a workout entry.
func (s *workoutService) Create(ctx context.Context, entry *domain.WorkoutEntry) (*domain.WorkoutEntry, error) {
	if entry.UserID == primitive.NilObjectID || entry.ExerciseName == "" || entry.Sets < 1 || entry.Reps < 1 || entry.Date.IsZero() {
		return nil, ErrValidationFailed
	}
	if entry.Category == "" {
		entry.Category = domain.CategoryOther
	}

	id, err := s.workoutRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id

	message := fmt.Sprintf("Workout %q added successfully.", entry.ExerciseName)
	if _, err := s.notifier.Notify(ctx, entry.UserID, domain.NotificationActivity, message); err != nil {
		return nil, err
	}

	return entry, nil
}

// ListByUser returns all workouts for a user, newest first.
func (s *workoutService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutEntry, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrValidationFailed
	}
	return s.workoutRepo.GetByUserID(ctx, userID)
}

// Update replaces a workout entry's fields.
func (s *workoutService) Update(ctx context.Context, entry *domain.WorkoutEntry) (*domain.WorkoutEntry, error) {
	if entry.ExerciseName == "" || entry.Sets < 1 || entry.Reps < 1 {
		return nil, ErrValidationFailed
	}

	existing, err := s.workoutRepo.GetByID(ctx, entry.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	entry.UserID = existing.UserID

	if err := s.workoutRepo.Update(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	message := fmt.Sprintf("Workout %q updated successfully.", entry.ExerciseName)
	if _, err := s.notifier.Notify(ctx, entry.UserID, domain.NotificationActivity, message); err != nil {
		return nil, err
	}

	return s.workoutRepo.GetByID(ctx, entry.ID)
}

// Delete removes a workout entry and records the deletion in the feed.
func (s *workoutService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.workoutRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}

	message := fmt.Sprintf("Workout %q deleted.", deleted.ExerciseName)
	if _, err := s.notifier.Notify(ctx, deleted.UserID, domain.NotificationActivity, message); err != nil {
		logrus.WithError(err).Warn("workout deleted but notification failed")
	}
	return nil
}
