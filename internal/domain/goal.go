package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Goal is a user-defined fitness target. Progress toward it is always
// derived from Current/Target at read time and never persisted.
type Goal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	GoalType  string             `bson:"goalType" json:"goalType"` // Free-text label, e.g. "Weight Loss"
	Target    float64            `bson:"target" json:"target"`
	Current   float64            `bson:"current" json:"current"`
	Deadline  time.Time          `bson:"deadline" json:"deadline"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsLossGoal classifies a goal label as loss-type. Loss-type goals count
// progress downward from the larger of current/target.
func (g *Goal) IsLossGoal() bool {
	label := strings.ToLower(g.GoalType)
	return strings.Contains(label, "loss") || strings.Contains(label, "reduce")
}

// IsWeightRelated reports whether the goal value is a body weight and
// should be rendered in the user's unit system.
func (g *Goal) IsWeightRelated() bool {
	label := strings.ToLower(g.GoalType)
	return strings.Contains(label, "weight") ||
		strings.Contains(label, "loss") ||
		strings.Contains(label, "gain")
}

// Progress returns the goal completion percentage in [0, 100].
func (g *Goal) Progress() float64 {
	if g.Current == 0 && g.Target == 0 {
		return 0
	}
	if g.Target == 0 {
		return 0
	}

	if g.IsLossGoal() {
		startWeight := math.Max(g.Current, g.Target)
		totalToLose := startWeight - g.Target
		alreadyLost := startWeight - g.Current
		if totalToLose <= 0 {
			return 100
		}
		return clampPercent(alreadyLost / totalToLose * 100)
	}

	startValue := math.Min(g.Current, g.Target)
	totalToGain := g.Target - startValue
	alreadyGained := g.Current - startValue
	if totalToGain <= 0 {
		return 100
	}
	return clampPercent(alreadyGained / totalToGain * 100)
}

func clampPercent(v float64) float64 {
	return math.Min(math.Max(v, 0), 100)
}

// Status renders the deadline state relative to now: achieved, overdue,
// due today, or the number of whole days remaining (ceiling).
func (g *Goal) Status(now time.Time) string {
	if g.Progress() >= 100 {
		return "Achieved"
	}

	daysRemaining := int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))
	switch {
	case daysRemaining < 0:
		return "Overdue"
	case daysRemaining == 0:
		return "Due today"
	case daysRemaining == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", daysRemaining)
	}
}
