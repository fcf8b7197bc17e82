package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrProgressNotFound = errors.New("progress entry not found")

// ProgressService manages body-progress entries. Every create or update
// appends a "progress updated" notification and then runs the
// goal-achievement scan. The scan is deliberately not idempotent: a user
// who re-logs the same under-target weight gets congratulated again.
type ProgressService interface {
	Create(ctx context.Context, entry *domain.ProgressEntry) (*domain.ProgressEntry, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error)
	Update(ctx context.Context, entry *domain.ProgressEntry) (*domain.ProgressEntry, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type progressService struct {
	progressRepo repository.ProgressRepository
	goalRepo     repository.GoalRepository
	notifier     NotificationService
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(progressRepo repository.ProgressRepository, goalRepo repository.GoalRepository, notifier NotificationService) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		goalRepo:     goalRepo,
		notifier:     notifier,
	}
}

// Create inserts a progress entry and fires the notification side effects.
func (s *progressService) Create(ctx context.Context, entry *domain.ProgressEntry) (*domain.ProgressEntry, error) {
	if entry.UserID == primitive.NilObjectID || entry.Date.IsZero() {
		return nil, ErrValidationFailed
	}

	id, err := s.progressRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id

	message := fmt.Sprintf("Progress updated for %s.", entry.Date.Format("Jan 2, 2006"))
	if _, err := s.notifier.Notify(ctx, entry.UserID, domain.NotificationReminder, message); err != nil {
		return nil, err
	}

	if err := s.checkGoalAchievements(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// ListByUser returns all progress entries for a user in chronological order.
func (s *progressService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrValidationFailed
	}
	return s.progressRepo.GetByUserID(ctx, userID)
}

// Update replaces weight/measurements/performance and re-runs the
// achievement scan against the updated values.
func (s *progressService) Update(ctx context.Context, entry *domain.ProgressEntry) (*domain.ProgressEntry, error) {
	updated, err := s.progressRepo.Update(ctx, entry)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}

	message := fmt.Sprintf("Progress updated for %s.", updated.Date.Format("Jan 2, 2006"))
	if _, err := s.notifier.Notify(ctx, updated.UserID, domain.NotificationReminder, message); err != nil {
		return nil, err
	}

	if err := s.checkGoalAchievements(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a progress entry. No notification side effect.
func (s *progressService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.progressRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProgressNotFound
	}
	return err
}

// checkGoalAchievements scans the user's goals against the new entry.
// Weight goals fire when the logged weight is at or below target;
// measurement goals fire when the logged waist is at or below target.
func (s *progressService) checkGoalAchievements(ctx context.Context, entry *domain.ProgressEntry) error {
	goals, err := s.goalRepo.GetByUserID(ctx, entry.UserID)
	if err != nil {
		return err
	}

	for _, goal := range goals {
		label := strings.ToLower(goal.GoalType)

		if strings.Contains(label, "weight") && entry.Weight > 0 && entry.Weight <= goal.Target {
			message := fmt.Sprintf(
				"🎯 Congratulations! You achieved your weight goal of %g kg. Current weight: %g kg.",
				goal.Target, entry.Weight,
			)
			if _, err := s.notifier.Notify(ctx, entry.UserID, domain.NotificationGoal, message); err != nil {
				return err
			}
		}

		if strings.Contains(label, "measurements") && entry.Measurements.Waist > 0 && entry.Measurements.Waist <= goal.Target {
			message := fmt.Sprintf(
				"🎯 Congratulations! You achieved your waist measurement goal of %g cm. Current: %g cm.",
				goal.Target, entry.Measurements.Waist,
			)
			if _, err := s.notifier.Notify(ctx, entry.UserID, domain.NotificationGoal, message); err != nil {
				return err
			}
		}
	}

	return nil
}
