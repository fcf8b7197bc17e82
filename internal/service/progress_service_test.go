package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"fitpulse/fitness-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProgressCreateNotifies(t *testing.T) {
	notificationRepo := &fakeNotificationRepo{}
	svc := NewProgressService(newFakeProgressRepo(), newFakeGoalRepo(), NewNotificationService(notificationRepo))
	userID := primitive.NewObjectID()

	entry := &domain.ProgressEntry{
		UserID: userID,
		Date:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Weight: 85,
	}
	if _, err := svc.Create(context.Background(), entry); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if len(notificationRepo.notifications) != 1 {
		t.Fatalf("stored %d notifications, want 1", len(notificationRepo.notifications))
	}
	got := notificationRepo.notifications[0]
	if got.Type != domain.NotificationReminder {
		t.Errorf("notification type = %q, want %q", got.Type, domain.NotificationReminder)
	}
	if got.Message != "Progress updated for Mar 10, 2025." {
		t.Errorf("notification message = %q", got.Message)
	}
}

func TestProgressGoalAchievement(t *testing.T) {
	notificationRepo := &fakeNotificationRepo{}
	goalRepo := newFakeGoalRepo()
	svc := NewProgressService(newFakeProgressRepo(), goalRepo, NewNotificationService(notificationRepo))
	userID := primitive.NewObjectID()
	ctx := context.Background()

	if _, err := goalRepo.Create(ctx, &domain.Goal{
		UserID:   userID,
		GoalType: "Weight Loss",
		Target:   80,
		Current:  85,
		Deadline: time.Now().AddDate(0, 1, 0),
	}); err != nil {
		t.Fatalf("goal create error = %v", err)
	}

	entry := &domain.ProgressEntry{UserID: userID, Date: time.Now(), Weight: 79}
	if _, err := svc.Create(ctx, entry); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	var goalNotes []domain.Notification
	for _, n := range notificationRepo.notifications {
		if n.Type == domain.NotificationGoal {
			goalNotes = append(goalNotes, n)
		}
	}
	if len(goalNotes) != 1 {
		t.Fatalf("got %d goal notifications, want 1", len(goalNotes))
	}
	if !strings.Contains(goalNotes[0].Message, "You achieved your weight goal of 80 kg") {
		t.Errorf("goal message = %q", goalNotes[0].Message)
	}
	if !strings.Contains(goalNotes[0].Message, "Current weight: 79 kg") {
		t.Errorf("goal message = %q", goalNotes[0].Message)
	}
}

func TestProgressGoalAchievementRepeats(t *testing.T) {
	// Re-logging an under-target weight congratulates again. The scan has
	// no memory of prior achievements.
	notificationRepo := &fakeNotificationRepo{}
	goalRepo := newFakeGoalRepo()
	svc := NewProgressService(newFakeProgressRepo(), goalRepo, NewNotificationService(notificationRepo))
	userID := primitive.NewObjectID()
	ctx := context.Background()

	goalRepo.Create(ctx, &domain.Goal{
		UserID:   userID,
		GoalType: "Weight Loss",
		Target:   80,
		Current:  85,
		Deadline: time.Now().AddDate(0, 1, 0),
	})

	for i := 0; i < 2; i++ {
		entry := &domain.ProgressEntry{UserID: userID, Date: time.Now(), Weight: 79}
		if _, err := svc.Create(ctx, entry); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	goalCount := 0
	for _, n := range notificationRepo.notifications {
		if n.Type == domain.NotificationGoal {
			goalCount++
		}
	}
	if goalCount != 2 {
		t.Errorf("got %d goal notifications, want 2", goalCount)
	}
}

func TestProgressAboveTargetNoAchievement(t *testing.T) {
	notificationRepo := &fakeNotificationRepo{}
	goalRepo := newFakeGoalRepo()
	svc := NewProgressService(newFakeProgressRepo(), goalRepo, NewNotificationService(notificationRepo))
	userID := primitive.NewObjectID()
	ctx := context.Background()

	goalRepo.Create(ctx, &domain.Goal{
		UserID:   userID,
		GoalType: "Weight Loss",
		Target:   80,
		Current:  85,
		Deadline: time.Now().AddDate(0, 1, 0),
	})

	entry := &domain.ProgressEntry{UserID: userID, Date: time.Now(), Weight: 84}
	if _, err := svc.Create(ctx, entry); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for _, n := range notificationRepo.notifications {
		if n.Type == domain.NotificationGoal {
			t.Errorf("unexpected goal notification: %q", n.Message)
		}
	}
}

func TestProgressWaistGoal(t *testing.T) {
	notificationRepo := &fakeNotificationRepo{}
	goalRepo := newFakeGoalRepo()
	svc := NewProgressService(newFakeProgressRepo(), goalRepo, NewNotificationService(notificationRepo))
	userID := primitive.NewObjectID()
	ctx := context.Background()

	goalRepo.Create(ctx, &domain.Goal{
		UserID:   userID,
		GoalType: "Body Measurements",
		Target:   85,
		Current:  92,
		Deadline: time.Now().AddDate(0, 1, 0),
	})

	entry := &domain.ProgressEntry{
		UserID:       userID,
		Date:         time.Now(),
		Measurements: domain.Measurements{Waist: 84},
	}
	if _, err := svc.Create(ctx, entry); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found := false
	for _, n := range notificationRepo.notifications {
		if n.Type == domain.NotificationGoal && strings.Contains(n.Message, "waist measurement goal of 85 cm") {
			found = true
		}
	}
	if !found {
		t.Error("expected waist goal achievement notification")
	}
}
