package service

import (
	"context"
	"io"
	"time"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes for service tests.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicateEmail
		}
	}
	id := primitive.NewObjectID()
	copied := *user
	copied.ID = id
	r.users[id] = &copied
	return id, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id primitive.ObjectID, name, email, image string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user.Name = name
	user.Email = email
	if image != "" {
		user.Image = image
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) UpdatePreferences(_ context.Context, id primitive.ObjectID, prefs domain.Preferences) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user.Preferences = prefs
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindByReminderTime(_ context.Context, hhmm string) ([]domain.User, error) {
	var matched []domain.User
	for _, user := range r.users {
		if !user.Preferences.Notifications.Push {
			continue
		}
		if user.Preferences.Reminders.Workout == hhmm || user.Preferences.Reminders.Meal == hhmm {
			matched = append(matched, *user)
		}
	}
	return matched, nil
}

type fakeNutritionRepo struct {
	logs map[primitive.ObjectID]*domain.NutritionLog
}

func newFakeNutritionRepo() *fakeNutritionRepo {
	return &fakeNutritionRepo{logs: make(map[primitive.ObjectID]*domain.NutritionLog)}
}

func (r *fakeNutritionRepo) Create(_ context.Context, log *domain.NutritionLog) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *log
	copied.ID = id
	r.logs[id] = &copied
	return id, nil
}

func (r *fakeNutritionRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.NutritionLog, error) {
	log, ok := r.logs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *log
	return &copied, nil
}

func (r *fakeNutritionRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.NutritionLog, error) {
	var result []domain.NutritionLog
	for _, log := range r.logs {
		if log.UserID == userID {
			result = append(result, *log)
		}
	}
	return result, nil
}

func (r *fakeNutritionRepo) Update(_ context.Context, log *domain.NutritionLog) error {
	if _, ok := r.logs[log.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *log
	r.logs[log.ID] = &copied
	return nil
}

func (r *fakeNutritionRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.logs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.logs, id)
	return nil
}

func (r *fakeNutritionRepo) DeleteByUserID(_ context.Context, userID primitive.ObjectID) error {
	for id, log := range r.logs {
		if log.UserID == userID {
			delete(r.logs, id)
		}
	}
	return nil
}

type fakeFileStorage struct {
	deleted []string
}

func (s *fakeFileStorage) Upload(_ context.Context, key, contentType string, body io.Reader) error {
	return nil
}

func (s *fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://files.example.com/" + key, nil
}

func (s *fakeFileStorage) DeleteObject(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

type fakeNotificationRepo struct {
	notifications []domain.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *n
	copied.ID = id
	copied.Date = time.Now()
	r.notifications = append(r.notifications, copied)
	return id, nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Notification, error) {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			copied := r.notifications[i]
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeNotificationRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.Notification, error) {
	var result []domain.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	return result, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id primitive.ObjectID) (*domain.Notification, error) {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].IsRead = true
			copied := r.notifications[i]
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeProgressRepo struct {
	entries map[primitive.ObjectID]*domain.ProgressEntry
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{entries: make(map[primitive.ObjectID]*domain.ProgressEntry)}
}

func (r *fakeProgressRepo) Create(_ context.Context, entry *domain.ProgressEntry) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *entry
	copied.ID = id
	r.entries[id] = &copied
	return id, nil
}

func (r *fakeProgressRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.ProgressEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *entry
	return &copied, nil
}

func (r *fakeProgressRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error) {
	var result []domain.ProgressEntry
	for _, entry := range r.entries {
		if entry.UserID == userID {
			result = append(result, *entry)
		}
	}
	return result, nil
}

func (r *fakeProgressRepo) Update(_ context.Context, entry *domain.ProgressEntry) (*domain.ProgressEntry, error) {
	existing, ok := r.entries[entry.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	existing.Date = entry.Date
	existing.Weight = entry.Weight
	existing.Measurements = entry.Measurements
	existing.Performance = entry.Performance
	copied := *existing
	return &copied, nil
}

func (r *fakeProgressRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.entries[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeProgressRepo) DeleteByUserID(_ context.Context, userID primitive.ObjectID) error {
	for id, entry := range r.entries {
		if entry.UserID == userID {
			delete(r.entries, id)
		}
	}
	return nil
}

type fakeReminderRepo struct {
	reminders map[primitive.ObjectID]*domain.Reminder
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: make(map[primitive.ObjectID]*domain.Reminder)}
}

func (r *fakeReminderRepo) Create(_ context.Context, reminder *domain.Reminder) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *reminder
	copied.ID = id
	r.reminders[id] = &copied
	return id, nil
}

func (r *fakeReminderRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Reminder, error) {
	reminder, ok := r.reminders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *reminder
	return &copied, nil
}

func (r *fakeReminderRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.Reminder, error) {
	var result []domain.Reminder
	for _, reminder := range r.reminders {
		if reminder.UserID == userID {
			result = append(result, *reminder)
		}
	}
	return result, nil
}

func (r *fakeReminderRepo) Update(_ context.Context, reminder *domain.Reminder) error {
	if _, ok := r.reminders[reminder.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *reminder
	r.reminders[reminder.ID] = &copied
	return nil
}

func (r *fakeReminderRepo) SetActive(_ context.Context, id primitive.ObjectID, isActive bool) (*domain.Reminder, error) {
	reminder, ok := r.reminders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	reminder.IsActive = isActive
	copied := *reminder
	return &copied, nil
}

func (r *fakeReminderRepo) Delete(_ context.Context, id primitive.ObjectID) (*domain.Reminder, error) {
	reminder, ok := r.reminders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.reminders, id)
	return reminder, nil
}

func (r *fakeReminderRepo) FindDue(_ context.Context, now time.Time) ([]domain.Reminder, error) {
	var due []domain.Reminder
	for _, reminder := range r.reminders {
		if reminder.IsActive && !reminder.Notified && !reminder.Date.After(now) {
			due = append(due, *reminder)
		}
	}
	return due, nil
}

func (r *fakeReminderRepo) MarkNotified(_ context.Context, id primitive.ObjectID) error {
	reminder, ok := r.reminders[id]
	if !ok {
		return repository.ErrNotFound
	}
	reminder.Notified = true
	return nil
}

type fakeWorkoutRepo struct {
	entries map[primitive.ObjectID]*domain.WorkoutEntry
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{entries: make(map[primitive.ObjectID]*domain.WorkoutEntry)}
}

func (r *fakeWorkoutRepo) Create(_ context.Context, entry *domain.WorkoutEntry) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *entry
	copied.ID = id
	r.entries[id] = &copied
	return id, nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *entry
	return &copied, nil
}

func (r *fakeWorkoutRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.WorkoutEntry, error) {
	var result []domain.WorkoutEntry
	for _, entry := range r.entries {
		if entry.UserID == userID {
			result = append(result, *entry)
		}
	}
	return result, nil
}

func (r *fakeWorkoutRepo) Update(_ context.Context, entry *domain.WorkoutEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *entry
	r.entries[entry.ID] = &copied
	return nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, id primitive.ObjectID) (*domain.WorkoutEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.entries, id)
	return entry, nil
}

func (r *fakeWorkoutRepo) DeleteByUserID(_ context.Context, userID primitive.ObjectID) error {
	for id, entry := range r.entries {
		if entry.UserID == userID {
			delete(r.entries, id)
		}
	}
	return nil
}

type fakeGoalRepo struct {
	goals map[primitive.ObjectID]*domain.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[primitive.ObjectID]*domain.Goal)}
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *domain.Goal) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *goal
	copied.ID = id
	r.goals[id] = &copied
	return id, nil
}

func (r *fakeGoalRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *goal
	return &copied, nil
}

func (r *fakeGoalRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.Goal, error) {
	var result []domain.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID {
			result = append(result, *goal)
		}
	}
	return result, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *domain.Goal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.goals[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.goals, id)
	return nil
}
