package service

import (
	"context"
	"errors"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrGoalNotFound = errors.New("goal not found")

// GoalService manages fitness goals. Progress percentages and status labels
// are derived by the domain type at read time; the service never stores them.
type GoalService interface {
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type goalService struct {
	goalRepo repository.GoalRepository
}

// NewGoalService creates a new instance of goalService.
func NewGoalService(goalRepo repository.GoalRepository) GoalService {
	return &goalService{goalRepo: goalRepo}
}

// Create validates and inserts a goal.
func (s *goalService) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	if goal.UserID == primitive.NilObjectID || goal.GoalType == "" || goal.Deadline.IsZero() {
		return nil, ErrValidationFailed
	}
	if goal.Target < 0 || goal.Current < 0 {
		return nil, ErrValidationFailed
	}

	id, err := s.goalRepo.Create(ctx, goal)
	if err != nil {
		return nil, err
	}
	goal.ID = id
	return goal, nil
}

// ListByUser returns all goals for a user sorted by nearest deadline.
func (s *goalService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Goal, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrValidationFailed
	}
	return s.goalRepo.GetByUserID(ctx, userID)
}

// Update replaces a goal's fields.
func (s *goalService) Update(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	if goal.GoalType == "" || goal.Target < 0 || goal.Current < 0 {
		return nil, ErrValidationFailed
	}

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return s.goalRepo.GetByID(ctx, goal.ID)
}

// Delete removes a goal.
func (s *goalService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.goalRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrGoalNotFound
	}
	return err
}
