package service

import (
	"context"
	"testing"

	"fitpulse/fitness-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestProfileService(userRepo *fakeUserRepo) ProfileService {
	return NewProfileService(userRepo, newFakeWorkoutRepo(), newFakeProgressRepo(), newFakeNutritionRepo(), &fakeFileStorage{})
}

func seedUser(t *testing.T, userRepo *fakeUserRepo) primitive.ObjectID {
	t.Helper()
	id, err := userRepo.Create(context.Background(), &domain.User{
		Name:        "Ayesha",
		Email:       "ayesha@example.com",
		Preferences: domain.DefaultPreferences(),
	})
	if err != nil {
		t.Fatalf("seed user error = %v", err)
	}
	return id
}

func TestUpdatePreferencesOmittedPushStaysEnabled(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestProfileService(userRepo)
	userID := seedUser(t, userRepo)

	prefs, err := svc.UpdatePreferences(context.Background(), userID, PreferencesUpdate{
		Theme: domain.ThemeLight,
	})
	if err != nil {
		t.Fatalf("UpdatePreferences() error = %v", err)
	}

	if !prefs.Notifications.Push {
		t.Error("omitting the notifications object must not disable push")
	}
	if prefs.Theme != domain.ThemeLight {
		t.Errorf("Theme = %q, want %q", prefs.Theme, domain.ThemeLight)
	}
}

func TestUpdatePreferencesExplicitPushOff(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestProfileService(userRepo)
	userID := seedUser(t, userRepo)

	prefs, err := svc.UpdatePreferences(context.Background(), userID, PreferencesUpdate{
		Notifications: &domain.NotificationPrefs{Push: false},
	})
	if err != nil {
		t.Fatalf("UpdatePreferences() error = %v", err)
	}

	if prefs.Notifications.Push {
		t.Error("an explicit push=false must be honored")
	}
}

func TestUpdatePreferencesFillsDefaults(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestProfileService(userRepo)
	userID := seedUser(t, userRepo)

	prefs, err := svc.UpdatePreferences(context.Background(), userID, PreferencesUpdate{})
	if err != nil {
		t.Fatalf("UpdatePreferences() error = %v", err)
	}

	want := domain.DefaultPreferences()
	if *prefs != want {
		t.Errorf("UpdatePreferences({}) = %+v, want defaults %+v", *prefs, want)
	}
}

func TestDeleteProfileCascades(t *testing.T) {
	userRepo := newFakeUserRepo()
	workoutRepo := newFakeWorkoutRepo()
	progressRepo := newFakeProgressRepo()
	nutritionRepo := newFakeNutritionRepo()
	fileStorage := &fakeFileStorage{}
	svc := NewProfileService(userRepo, workoutRepo, progressRepo, nutritionRepo, fileStorage)
	ctx := context.Background()

	userID, err := userRepo.Create(ctx, &domain.User{
		Name:        "Ayesha",
		Email:       "ayesha@example.com",
		Image:       "profiles/abc.jpg",
		Preferences: domain.DefaultPreferences(),
	})
	if err != nil {
		t.Fatalf("seed user error = %v", err)
	}
	workoutRepo.Create(ctx, &domain.WorkoutEntry{UserID: userID, ExerciseName: "Squats"})
	progressRepo.Create(ctx, &domain.ProgressEntry{UserID: userID, Weight: 80})
	nutritionRepo.Create(ctx, &domain.NutritionLog{UserID: userID, MealType: domain.MealLunch})

	if err := svc.DeleteProfile(ctx, userID); err != nil {
		t.Fatalf("DeleteProfile() error = %v", err)
	}

	if _, err := userRepo.GetByID(ctx, userID); err == nil {
		t.Error("user should be gone")
	}
	if entries, _ := workoutRepo.GetByUserID(ctx, userID); len(entries) != 0 {
		t.Errorf("workouts remaining: %d", len(entries))
	}
	if entries, _ := progressRepo.GetByUserID(ctx, userID); len(entries) != 0 {
		t.Errorf("progress entries remaining: %d", len(entries))
	}
	if logs, _ := nutritionRepo.GetByUserID(ctx, userID); len(logs) != 0 {
		t.Errorf("nutrition logs remaining: %d", len(logs))
	}
	if len(fileStorage.deleted) != 1 || fileStorage.deleted[0] != "profiles/abc.jpg" {
		t.Errorf("deleted objects = %v, want the profile image", fileStorage.deleted)
	}
}
