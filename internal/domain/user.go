package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnitSystem selects how weights and measurements are displayed.
type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

// Theme is the UI color scheme stored per user.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Supported interface languages.
const (
	LanguageEnglish = "en"
	LanguageSpanish = "es"
	LanguageFrench  = "fr"
	LanguageGerman  = "de"
	LanguageUrdu    = "ur"
)

// NotificationPrefs toggles notification delivery for a user.
type NotificationPrefs struct {
	Push bool `bson:"push" json:"push"`
}

// ReminderTimes holds the daily reminder times as zero-padded "HH:MM"
// strings. The reminder scanner compares them verbatim against the
// current wall-clock minute.
type ReminderTimes struct {
	Workout string `bson:"workout" json:"workout"`
	Meal    string `bson:"meal" json:"meal"`
}

// Preferences is embedded in User and updated as a whole document.
type Preferences struct {
	Notifications NotificationPrefs `bson:"notifications" json:"notifications"`
	Units         UnitSystem        `bson:"units" json:"units"`
	Theme         Theme             `bson:"theme" json:"theme"`
	Language      string            `bson:"language" json:"language"`
	Reminders     ReminderTimes     `bson:"reminders" json:"reminders"`
}

// DefaultPreferences returns the preference set assigned at registration.
func DefaultPreferences() Preferences {
	return Preferences{
		Notifications: NotificationPrefs{Push: true},
		Units:         UnitsMetric,
		Theme:         ThemeDark,
		Language:      LanguageEnglish,
		Reminders:     ReminderTimes{Workout: "07:00", Meal: "12:00"},
	}
}

// User represents a registered account.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Unique index
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose via JSON
	Image        string             `bson:"image,omitempty" json:"image,omitempty"` // S3 object key of the profile picture
	Preferences  Preferences        `bson:"preferences" json:"preferences"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
