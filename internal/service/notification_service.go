package service

import (
	"context"
	"errors"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidType          = errors.New("unknown notification type")
)

// NotificationService is the per-user notification feed: list newest first,
// create, mark read, mark all read, delete.
type NotificationService interface {
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.Notification, error)
	Notify(ctx context.Context, userID primitive.ObjectID, kind domain.NotificationType, message string) (*domain.Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new instance of notificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// List returns the full notification history for a user, newest first.
func (s *notificationService) List(ctx context.Context, userID primitive.ObjectID) ([]domain.Notification, error) {
	return s.notificationRepo.GetByUserID(ctx, userID)
}

// Notify appends a notification record for the user.
func (s *notificationService) Notify(ctx context.Context, userID primitive.ObjectID, kind domain.NotificationType, message string) (*domain.Notification, error) {
	if !kind.Valid() {
		return nil, ErrInvalidType
	}
	if userID == primitive.NilObjectID || message == "" {
		return nil, errors.New("user ID and message are required")
	}

	notification := &domain.Notification{
		UserID:  userID,
		Type:    kind,
		Message: message,
	}

	id, err := s.notificationRepo.Create(ctx, notification)
	if err != nil {
		return nil, err
	}
	notification.ID = id
	return notification, nil
}

// MarkRead flips isRead on one notification. Re-marking a read notification
// is a no-op.
func (s *notificationService) MarkRead(ctx context.Context, id primitive.ObjectID) (*domain.Notification, error) {
	notification, err := s.notificationRepo.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return notification, nil
}

// MarkAllRead marks every currently-unread notification for the user, one
// by one. Not atomic: a mid-loop failure leaves earlier items read and
// later ones unread. Returns the number of notifications flipped.
func (s *notificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int, error) {
	notifications, err := s.notificationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, n := range notifications {
		if n.IsRead {
			continue
		}
		if _, err := s.notificationRepo.MarkRead(ctx, n.ID); err != nil {
			return marked, err
		}
		marked++
	}
	return marked, nil
}

// Delete removes one notification.
func (s *notificationService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.notificationRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}
