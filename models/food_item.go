package models

import "gorm.io/gorm"

// A catalog entry from the PCOS meal dataset. Reference data: loaded
// once from CSV, read-only afterwards.
type FoodItem struct {
	gorm.Model
	Name        string   `gorm:"index;not null" json:"food_name"`
	Ingredients []string `gorm:"serializer:json" json:"ingredients"`
	EnergyKcal  float64  `json:"energy_kcal"`
	ProteinG    float64  `json:"protein_g"`
	CarbG       float64  `json:"carb_g"`
	FatG        float64  `json:"fat_g"`
}
