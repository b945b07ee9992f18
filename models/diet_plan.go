package models

import "gorm.io/gorm"

// Meal slots, in display order.
var MealSlots = []string{"breakfast", "lunch", "snacks", "dinner"}

// DayPlan is one calendar day of a weekly plan, stored inline as JSON.
type DayPlan struct {
	Date  string            `json:"date"` // YYYY-MM-DD
	Meals map[string][]uint `json:"meals"`
}

// WeeklyDietPlan holds 7 consecutive DayPlans starting at WeekStart.
// Regeneration replaces Days wholesale for the (user, week_start) key.
type WeeklyDietPlan struct {
	gorm.Model
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_user_week"`
	WeekStart string    `gorm:"not null;uniqueIndex:uidx_user_week"` // YYYY-MM-DD
	Days      []DayPlan `gorm:"serializer:json"`
}
