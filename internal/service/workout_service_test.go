package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitpulse/fitness-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWorkoutCreateNotifiesActivity(t *testing.T) {
	notificationRepo := &fakeNotificationRepo{}
	svc := NewWorkoutService(newFakeWorkoutRepo(), NewNotificationService(notificationRepo))
	userID := primitive.NewObjectID()

	entry := &domain.WorkoutEntry{
		UserID:       userID,
		ExerciseName: "Squats",
		Sets:         3,
		Reps:         10,
		Date:         time.Now(),
	}
	created, err := svc.Create(context.Background(), entry)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Category != domain.CategoryOther {
		t.Errorf("empty category should default to %q, got %q", domain.CategoryOther, created.Category)
	}

	if len(notificationRepo.notifications) != 1 {
		t.Fatalf("stored %d notifications, want 1", len(notificationRepo.notifications))
	}
	got := notificationRepo.notifications[0]
	if got.Type != domain.NotificationActivity {
		t.Errorf("notification type = %q, want %q", got.Type, domain.NotificationActivity)
	}
	if got.Message != `Workout "Squats" added successfully.` {
		t.Errorf("notification message = %q", got.Message)
	}
}

func TestWorkoutCreateValidation(t *testing.T) {
	svc := NewWorkoutService(newFakeWorkoutRepo(), NewNotificationService(&fakeNotificationRepo{}))

	tests := []struct {
		name  string
		entry domain.WorkoutEntry
	}{
		{"missing user", domain.WorkoutEntry{ExerciseName: "Squats", Sets: 3, Reps: 10, Date: time.Now()}},
		{"missing name", domain.WorkoutEntry{UserID: primitive.NewObjectID(), Sets: 3, Reps: 10, Date: time.Now()}},
		{"zero sets", domain.WorkoutEntry{UserID: primitive.NewObjectID(), ExerciseName: "Squats", Reps: 10, Date: time.Now()}},
		{"zero date", domain.WorkoutEntry{UserID: primitive.NewObjectID(), ExerciseName: "Squats", Sets: 3, Reps: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := tt.entry
			if _, err := svc.Create(context.Background(), &entry); !errors.Is(err, ErrValidationFailed) {
				t.Errorf("Create() error = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestWorkoutUpdatePreservesOwner(t *testing.T) {
	workoutRepo := newFakeWorkoutRepo()
	svc := NewWorkoutService(workoutRepo, NewNotificationService(&fakeNotificationRepo{}))
	userID := primitive.NewObjectID()
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.WorkoutEntry{
		UserID:       userID,
		ExerciseName: "Squats",
		Sets:         3,
		Reps:         10,
		Date:         time.Now(),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(ctx, &domain.WorkoutEntry{
		ID:           created.ID,
		ExerciseName: "Front Squats",
		Sets:         4,
		Reps:         8,
		Date:         time.Now(),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.UserID != userID {
		t.Errorf("Update() changed owner: %s", updated.UserID.Hex())
	}
	if updated.ExerciseName != "Front Squats" {
		t.Errorf("ExerciseName = %q", updated.ExerciseName)
	}
}

func TestWorkoutDeleteUnknown(t *testing.T) {
	svc := NewWorkoutService(newFakeWorkoutRepo(), NewNotificationService(&fakeNotificationRepo{}))

	err := svc.Delete(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, ErrWorkoutNotFound) {
		t.Fatalf("Delete() error = %v, want ErrWorkoutNotFound", err)
	}
}
