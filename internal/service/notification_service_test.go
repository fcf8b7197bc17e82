package service

import (
	"context"
	"errors"
	"testing"

	"fitpulse/fitness-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNotifyRejectsUnknownType(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationRepo{})

	_, err := svc.Notify(context.Background(), primitive.NewObjectID(), "email", "hello")
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("Notify() error = %v, want ErrInvalidType", err)
	}
}

func TestNotifyCreatesUnread(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)
	userID := primitive.NewObjectID()

	created, err := svc.Notify(context.Background(), userID, domain.NotificationActivity, "Workout \"Squats\" added successfully.")
	if err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if created.IsRead {
		t.Error("new notification should be unread")
	}
	if created.ID == primitive.NilObjectID {
		t.Error("notification should have an assigned id")
	}
	if len(repo.notifications) != 1 {
		t.Fatalf("stored %d notifications, want 1", len(repo.notifications))
	}
}

func TestMarkAllRead(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)
	userID := primitive.NewObjectID()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Notify(ctx, userID, domain.NotificationReminder, "tick"); err != nil {
			t.Fatalf("Notify() error = %v", err)
		}
	}
	// One already-read notification must not be counted.
	read, _ := svc.Notify(ctx, userID, domain.NotificationGoal, "done")
	if _, err := svc.MarkRead(ctx, read.ID); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}

	marked, err := svc.MarkAllRead(ctx, userID)
	if err != nil {
		t.Fatalf("MarkAllRead() error = %v", err)
	}
	if marked != 3 {
		t.Errorf("MarkAllRead() = %d, want 3", marked)
	}

	// Second pass is a no-op.
	marked, err = svc.MarkAllRead(ctx, userID)
	if err != nil {
		t.Fatalf("MarkAllRead() second pass error = %v", err)
	}
	if marked != 0 {
		t.Errorf("MarkAllRead() second pass = %d, want 0", marked)
	}
}

func TestMarkReadUnknownID(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationRepo{})

	_, err := svc.MarkRead(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("MarkRead() error = %v, want ErrNotificationNotFound", err)
	}
}
