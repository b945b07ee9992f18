package models

import "gorm.io/gorm"

// CycleRecord tracks one menstrual period. A record is created open
// (Ended=false) and transitions to closed exactly once, via the end
// period action. The most recent open record is the "active period".
type CycleRecord struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	StartDate string `gorm:"index;not null"` // YYYY-MM-DD
	EndDate   string // empty until the period is marked ended
	Ended     bool   `gorm:"default:false"`
}

// CyclePrediction is a persisted prediction snapshot from /predictor.
type CyclePrediction struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null"`
	LastPeriodDate string // YYYY-MM-DD
	CycleLength    int
	PredictedDate  string // YYYY-MM-DD
	CycleDay       int
}
