package models

import "gorm.io/gorm"

type Workout struct {
	gorm.Model
	UserID      uint     `gorm:"index;not null"`
	WorkoutType string
	Exercises   []string `gorm:"serializer:json"`
	Duration    float64  // minutes
	RestPeriod  float64  // seconds
	Intensity   float64
}

// Exercise is the local HIIT catalog (body-weight movements served
// without calling the external exercise API).
type Exercise struct {
	gorm.Model
	Name           string `gorm:"index"`
	Equipment      string
	PrimaryMuscles []string `gorm:"serializer:json"`
	Instructions   []string `gorm:"serializer:json"`
	Images         []string `gorm:"serializer:json"`
}
