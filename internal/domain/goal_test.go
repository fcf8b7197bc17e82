package domain

import (
	"testing"
	"time"
)

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name     string
		goalType string
		current  float64
		target   float64
		want     float64
	}{
		{"loss not reached", "Weight Loss", 100, 80, 0},
		{"loss exactly at target", "Weight Loss", 80, 80, 100},
		{"loss past target", "Weight Loss", 79, 80, 100},
		{"reduce counts as loss", "Reduce Waist", 90, 85, 0},
		{"gain not reached", "Muscle Gain", 50, 100, 0},
		{"gain at target", "Muscle Gain", 100, 100, 100},
		{"gain past target", "Muscle Gain", 110, 100, 100},
		{"both zero", "Weight Loss", 0, 0, 0},
		{"zero target", "Muscle Gain", 50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Goal{GoalType: tt.goalType, Current: tt.current, Target: tt.target}
			if got := g.Progress(); got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGoalIsLossGoal(t *testing.T) {
	tests := []struct {
		goalType string
		want     bool
	}{
		{"Weight Loss", true},
		{"weight loss", true},
		{"Reduce Body Fat", true},
		{"Muscle Gain", false},
		{"Endurance", false},
	}

	for _, tt := range tests {
		g := Goal{GoalType: tt.goalType}
		if got := g.IsLossGoal(); got != tt.want {
			t.Errorf("IsLossGoal(%q) = %v, want %v", tt.goalType, got, tt.want)
		}
	}
}

func TestGoalStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		goal     Goal
		want     string
	}{
		{
			"achieved overrides deadline",
			Goal{GoalType: "Weight Loss", Current: 75, Target: 80, Deadline: now.AddDate(0, 0, -10)},
			"Achieved",
		},
		{
			"overdue",
			Goal{GoalType: "Muscle Gain", Current: 50, Target: 100, Deadline: now.AddDate(0, 0, -2)},
			"Overdue",
		},
		{
			"due today",
			Goal{GoalType: "Muscle Gain", Current: 50, Target: 100, Deadline: now},
			"Due today",
		},
		{
			"one day left",
			Goal{GoalType: "Muscle Gain", Current: 50, Target: 100, Deadline: now.Add(20 * time.Hour)},
			"1 day left",
		},
		{
			"several days left uses ceiling",
			Goal{GoalType: "Muscle Gain", Current: 50, Target: 100, Deadline: now.Add(49 * time.Hour)},
			"3 days left",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.goal.Status(now); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}
