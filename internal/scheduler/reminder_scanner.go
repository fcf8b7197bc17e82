package scheduler

import (
	"context"
	"fmt"
	"time"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/repository"
	"fitpulse/fitness-tracker/internal/service"

	"github.com/sirupsen/logrus"
)

const workoutReminderMessage = "💪 Workout time! Let's get moving and crush those fitness goals!"
const mealReminderMessage = "🍎 Meal time! Fuel your body with healthy nutrition!"

// ReminderScanner is the periodic job behind all reminder notifications.
// Each tick it matches user preference times against the current wall-clock
// minute and sweeps due one-off reminders. It is the single authoritative
// scheduler; clients only read the Notification records it creates.
//
// A tick that errors is logged and skipped. There is no retry and no
// catch-up: a preference time that falls between ticks (clock drift,
// restart) is missed. One-off reminders don't share that fragility; the
// due sweep uses the notified flag rather than an exact time match.
type ReminderScanner struct {
	userRepo     repository.UserRepository
	reminderRepo repository.ReminderRepository
	notifier     service.NotificationService
	interval     time.Duration
	now          func() time.Time
}

// NewReminderScanner creates a scanner ticking at the given interval
// (default 5 minutes).
func NewReminderScanner(
	userRepo repository.UserRepository,
	reminderRepo repository.ReminderRepository,
	notifier service.NotificationService,
	interval time.Duration,
) *ReminderScanner {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &ReminderScanner{
		userRepo:     userRepo,
		reminderRepo: reminderRepo,
		notifier:     notifier,
		interval:     interval,
		now:          time.Now,
	}
}

// Start launches the scan loop in its own goroutine. It stops when the
// context is cancelled.
func (s *ReminderScanner) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logrus.Info("reminder scanner stopped")
				return
			case <-ticker.C:
				s.Tick(ctx)
			}
		}
	}()
	logrus.WithField("interval", s.interval).Info("reminder scanner started")
}

// Tick runs one scan pass. Exported so tests can drive it directly.
func (s *ReminderScanner) Tick(ctx context.Context) {
	now := s.now()
	currentTime := fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())
	logrus.WithField("time", currentTime).Debug("checking reminders")

	s.scanPreferenceTimes(ctx, currentTime)
	s.sweepDueReminders(ctx, now)
}

// scanPreferenceTimes emits one notification per user whose stored workout
// or meal reminder time equals the current minute exactly. When both match,
// the workout copy wins.
func (s *ReminderScanner) scanPreferenceTimes(ctx context.Context, currentTime string) {
	users, err := s.userRepo.FindByReminderTime(ctx, currentTime)
	if err != nil {
		logrus.WithError(err).Error("reminder scan: user query failed")
		return
	}

	for _, user := range users {
		message := mealReminderMessage
		if user.Preferences.Reminders.Workout == currentTime {
			message = workoutReminderMessage
		}

		if _, err := s.notifier.Notify(ctx, user.ID, domain.NotificationReminder, message); err != nil {
			logrus.WithError(err).WithField("user", user.ID.Hex()).Error("reminder scan: notify failed")
			continue
		}
		logrus.WithField("user", user.Name).Info("push reminder sent")
	}
}

// sweepDueReminders fires notifications for active one-off reminders whose
// scheduled time has passed, then marks them notified.
func (s *ReminderScanner) sweepDueReminders(ctx context.Context, now time.Time) {
	due, err := s.reminderRepo.FindDue(ctx, now)
	if err != nil {
		logrus.WithError(err).Error("reminder sweep: query failed")
		return
	}

	for _, reminder := range due {
		kind := domain.NotificationReminder
		message := fmt.Sprintf("⏰ Reminder: %s", reminder.Title)
		if reminder.IsAlert() {
			kind = domain.NotificationAlert
			message = fmt.Sprintf("🚨 Alert: %s", reminder.Title)
		}

		if _, err := s.notifier.Notify(ctx, reminder.UserID, kind, message); err != nil {
			logrus.WithError(err).WithField("reminder", reminder.ID.Hex()).Error("reminder sweep: notify failed")
			continue
		}

		if err := s.reminderRepo.MarkNotified(ctx, reminder.ID); err != nil {
			logrus.WithError(err).WithField("reminder", reminder.ID.Hex()).Error("reminder sweep: mark notified failed")
		}
	}
}
