package service

import (
	"context"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedbackService accepts testimonials and serves the public listing.
type FeedbackService interface {
	Create(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error)
	List(ctx context.Context) ([]domain.Feedback, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

// NewFeedbackService creates a new instance of feedbackService.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo}
}

// Create validates and inserts a feedback record.
func (s *feedbackService) Create(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error) {
	if feedback.UserID == primitive.NilObjectID || feedback.Name == "" || feedback.Email == "" ||
		feedback.Rating == "" || feedback.Message == "" {
		return nil, ErrValidationFailed
	}

	id, err := s.feedbackRepo.Create(ctx, feedback)
	if err != nil {
		return nil, err
	}
	feedback.ID = id
	return feedback, nil
}

// List returns all feedback, newest first. Public and unauthenticated.
func (s *feedbackService) List(ctx context.Context) ([]domain.Feedback, error) {
	return s.feedbackRepo.GetAll(ctx)
}
