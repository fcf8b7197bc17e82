package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/repository"
	"fitpulse/fitness-tracker/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUserNotFound = errors.New("user not found")

// Profile is the public view of a user account. ImageURL is a presigned
// download URL when a profile picture exists.
type Profile struct {
	ID       primitive.ObjectID
	Name     string
	Email    string
	ImageURL string
}

// ProfileService manages the user profile, embedded preferences and the
// account-deletion cascade.
type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, name, email string, image *ProfileImage) (*Profile, error)
	DeleteProfile(ctx context.Context, userID primitive.ObjectID) error
	GetPreferences(ctx context.Context, userID primitive.ObjectID) (*domain.Preferences, error)
	UpdatePreferences(ctx context.Context, userID primitive.ObjectID, update PreferencesUpdate) (*domain.Preferences, error)
	// UploadProfileImage stores an image and returns its object key, for use
	// at registration time before the user record exists.
	UploadProfileImage(ctx context.Context, image *ProfileImage) (string, error)
}

// ProfileImage carries an uploaded image stream from the multipart form.
type ProfileImage struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// PreferencesUpdate is a preference write. Notifications is a pointer so an
// omitted toggle object can be told apart from an explicit push=false; an
// omitted one falls back to the default (push enabled) like every other
// missing field.
type PreferencesUpdate struct {
	Notifications *domain.NotificationPrefs
	Units         domain.UnitSystem
	Theme         domain.Theme
	Language      string
	Reminders     domain.ReminderTimes
}

type profileService struct {
	userRepo      repository.UserRepository
	workoutRepo   repository.WorkoutRepository
	progressRepo  repository.ProgressRepository
	nutritionRepo repository.NutritionRepository
	fileStorage   storage.FileStorage
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	workoutRepo repository.WorkoutRepository,
	progressRepo repository.ProgressRepository,
	nutritionRepo repository.NutritionRepository,
	fileStorage storage.FileStorage,
) ProfileService {
	return &profileService{
		userRepo:      userRepo,
		workoutRepo:   workoutRepo,
		progressRepo:  progressRepo,
		nutritionRepo: nutritionRepo,
		fileStorage:   fileStorage,
	}
}

// GetProfile returns name, email and a presigned image URL for a user.
func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.toProfile(ctx, user), nil
}

// UpdateProfile updates name/email and optionally replaces the profile image.
func (s *profileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, name, email string, image *ProfileImage) (*Profile, error) {
	imageKey := ""
	if image != nil {
		key, err := s.UploadProfileImage(ctx, image)
		if err != nil {
			return nil, err
		}
		imageKey = key
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, name, email, imageKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.toProfile(ctx, user), nil
}

// DeleteProfile removes the account and cascades deletion of owned
// workouts, progress entries and nutrition logs. The cascade is
// best-effort and per-collection; there is no transaction.
func (s *profileService) DeleteProfile(ctx context.Context, userID primitive.ObjectID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.workoutRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.progressRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.nutritionRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}

	if user.Image != "" {
		if err := s.fileStorage.DeleteObject(ctx, user.Image); err != nil {
			logrus.WithError(err).WithField("key", user.Image).Warn("profile image cleanup failed")
		}
	}

	return nil
}

// GetPreferences returns the embedded preference document.
func (s *profileService) GetPreferences(ctx context.Context, userID primitive.ObjectID) (*domain.Preferences, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user.Preferences, nil
}

// UpdatePreferences replaces the preference document, filling omitted
// fields with defaults.
func (s *profileService) UpdatePreferences(ctx context.Context, userID primitive.ObjectID, update PreferencesUpdate) (*domain.Preferences, error) {
	defaults := domain.DefaultPreferences()

	prefs := domain.Preferences{
		Notifications: defaults.Notifications,
		Units:         update.Units,
		Theme:         update.Theme,
		Language:      update.Language,
		Reminders:     update.Reminders,
	}
	if update.Notifications != nil {
		prefs.Notifications = *update.Notifications
	}
	if prefs.Units == "" {
		prefs.Units = defaults.Units
	}
	if prefs.Theme == "" {
		prefs.Theme = defaults.Theme
	}
	if prefs.Language == "" {
		prefs.Language = defaults.Language
	}
	if prefs.Reminders.Workout == "" {
		prefs.Reminders.Workout = defaults.Reminders.Workout
	}
	if prefs.Reminders.Meal == "" {
		prefs.Reminders.Meal = defaults.Reminders.Meal
	}

	user, err := s.userRepo.UpdatePreferences(ctx, userID, prefs)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user.Preferences, nil
}

// UploadProfileImage stores the image under a fresh UUID key.
func (s *profileService) UploadProfileImage(ctx context.Context, image *ProfileImage) (string, error) {
	key := fmt.Sprintf("profiles/%s%s", uuid.NewString(), path.Ext(image.FileName))
	if err := s.fileStorage.Upload(ctx, key, image.ContentType, image.Body); err != nil {
		return "", err
	}
	return key, nil
}

func (s *profileService) toProfile(ctx context.Context, user *domain.User) *Profile {
	profile := &Profile{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
	if user.Image != "" {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, user.Image, storage.DefaultPresignedURLExpiry)
		if err != nil {
			logrus.WithError(err).WithField("key", user.Image).Warn("presigning profile image failed")
		} else {
			profile.ImageURL = url
		}
	}
	return profile
}
