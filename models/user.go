package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	Allergies     []string `gorm:"serializer:json"`
	ExerciseTypes []string `gorm:"serializer:json"`

	// Profile metrics
	Age        int
	Weight     float64 // kg
	Height     float64 // cm
	BMI        float64
	BloodGroup string
	PulseRate  float64
	Hip        float64 // cm
	Waist      float64 // cm
	WHRatio    float64

	// Cycle profile
	CycleLength    int `gorm:"default:28"` // days
	CycleMonths    int
	LastPeriodDate string // YYYY-MM-DD

	// PCOS history flags
	PCOS           bool
	Pregnant       bool
	Abortions      int
	Bloated        bool
	FacialHair     bool
	ChestHair      bool
	Obesity        bool
	MoodSwings     bool
	Stress         bool
	IrregularSleep bool
	WeightGain     bool
	HairGrowth     bool
	SkinDarkening  bool
	HairLoss       bool
	Pimples        bool
	FastFood       bool
	RegExercise    bool
	MarriageStatus string
	BasicHistory   string

	// Daily targets
	TargetCalories float64 `gorm:"default:2000"`
	StepGoal       float64 `gorm:"default:6000"`
	ActivityGoal   float64 `gorm:"default:1"`

	DarkMode       bool
	ProfilePicture string

	ResetToken    string
	ResetTokenExp time.Time
}
