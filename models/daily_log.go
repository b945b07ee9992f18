package models

import (
	"time"

	"gorm.io/gorm"
)

// Daily logs are keyed by (user_id, date) and overwritten wholesale on
// every POST: a field absent from the payload goes back to its zero
// value, not to the previously stored one.

type DietLog struct {
	gorm.Model
	UserID           uint     `gorm:"not null;uniqueIndex:uidx_diet_user_date"`
	Date             string   `gorm:"not null;uniqueIndex:uidx_diet_user_date"` // YYYY-MM-DD
	CaloriesConsumed float64  `json:"calories_consumed"`
	TotalAllowed     float64  `json:"total_allowed"`
	Protein          float64  `json:"protein"`
	Carbs            float64  `json:"carbs"`
	Fats             float64  `json:"fats"`
	Foods            []string `gorm:"serializer:json" json:"foods"`
}

type ActivityLog struct {
	gorm.Model
	UserID        uint     `gorm:"not null;uniqueIndex:uidx_activity_user_date"`
	Date          string   `gorm:"not null;uniqueIndex:uidx_activity_user_date"`
	CaloriesBurnt float64  `json:"calories_burnt"`
	GoalCalories  float64  `json:"goal_calories"`
	Steps         float64  `json:"steps"`
	GoalSteps     float64  `json:"goal_steps"`
	Hours         float64  `json:"hours"`
	GoalHours     float64  `json:"goal_hours"`
	Activities    []string `gorm:"serializer:json" json:"activities"`
}

type JournalLog struct {
	gorm.Model
	UserID            uint   `gorm:"not null;uniqueIndex:uidx_journal_user_date"`
	Date              string `gorm:"not null;uniqueIndex:uidx_journal_user_date"`
	Mood              string `json:"mood"`
	SleepQuality      float64 `json:"sleep_quality"`
	BehavioralPattern string `json:"behavioral_pattern"`
	Notes             string `json:"notes"`
}

// JournalEntry is the append-only variant: every POST to /api/journal
// inserts a new row instead of replacing the day's log.
type JournalEntry struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Date      string
	Mood      string
	Stress    string
	Symptoms  string
	Notes     string
	FeelData  string
	CreatedAt time.Time
}
