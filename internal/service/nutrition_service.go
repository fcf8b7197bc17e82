package service

import (
	"context"
	"errors"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNutritionNotFound = errors.New("nutrition log not found")

// NutritionService manages meal logs. Calorie and macro totals are derived
// by the domain type on read; nothing aggregate is ever persisted.
type NutritionService interface {
	Create(ctx context.Context, log *domain.NutritionLog) (*domain.NutritionLog, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.NutritionLog, error)
	Update(ctx context.Context, log *domain.NutritionLog) (*domain.NutritionLog, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type nutritionService struct {
	nutritionRepo repository.NutritionRepository
}

// NewNutritionService creates a new instance of nutritionService.
func NewNutritionService(nutritionRepo repository.NutritionRepository) NutritionService {
	return &nutritionService{nutritionRepo: nutritionRepo}
}

// Create validates and inserts a nutrition log. An empty food list is
// rejected; a log without foods has no meaning.
func (s *nutritionService) Create(ctx context.Context, log *domain.NutritionLog) (*domain.NutritionLog, error) {
	if log.UserID == primitive.NilObjectID || log.MealType == "" || len(log.FoodItems) == 0 || log.Date.IsZero() {
		return nil, ErrValidationFailed
	}

	id, err := s.nutritionRepo.Create(ctx, log)
	if err != nil {
		return nil, err
	}
	log.ID = id
	return log, nil
}

// ListByUser returns all nutrition logs for a user, newest first.
func (s *nutritionService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.NutritionLog, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrValidationFailed
	}
	return s.nutritionRepo.GetByUserID(ctx, userID)
}

// Update replaces a nutrition log's fields.
func (s *nutritionService) Update(ctx context.Context, log *domain.NutritionLog) (*domain.NutritionLog, error) {
	if log.MealType == "" || len(log.FoodItems) == 0 {
		return nil, ErrValidationFailed
	}

	if err := s.nutritionRepo.Update(ctx, log); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNutritionNotFound
		}
		return nil, err
	}
	return s.nutritionRepo.GetByID(ctx, log.ID)
}

// Delete removes a nutrition log.
func (s *nutritionService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.nutritionRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNutritionNotFound
	}
	return err
}
