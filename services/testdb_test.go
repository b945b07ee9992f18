package services

import (
	"testing"

	"github.com/Samgoldwin/hormocare/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own in-memory sqlite database with the
// full schema migrated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A second pooled connection would see its own empty :memory: db.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.WeeklyDietPlan{},
		&models.DietLog{},
		&models.ActivityLog{},
		&models.JournalLog{},
		&models.JournalEntry{},
		&models.CycleRecord{},
		&models.CyclePrediction{},
		&models.Workout{},
		&models.Exercise{},
		&models.Alert{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedFoods(t *testing.T, db *gorm.DB, foods ...models.FoodItem) []models.FoodItem {
	t.Helper()
	for i := range foods {
		if err := db.Create(&foods[i]).Error; err != nil {
			t.Fatalf("seed food %q: %v", foods[i].Name, err)
		}
	}
	return foods
}
