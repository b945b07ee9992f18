package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Samgoldwin/hormocare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSafeFoodsEmptyAllergens(t *testing.T) {
	catalog := []models.FoodItem{
		{Name: "Oats Bowl", Ingredients: []string{"oats", "milk"}},
		{Name: "Peanut Salad", Ingredients: []string{"peanut", "lettuce"}},
	}

	safe := SafeFoods(catalog, nil)
	assert.Equal(t, catalog, safe)

	safe = SafeFoods(catalog, []string{})
	assert.Equal(t, catalog, safe)
}

func TestSafeFoodsFiltersByIngredient(t *testing.T) {
	catalog := []models.FoodItem{
		{Name: "Oats Bowl", Ingredients: []string{"oats", "milk"}},
		{Name: "Peanut Salad", Ingredients: []string{"peanut", "lettuce"}},
		{Name: "Rice Plate", Ingredients: []string{"rice"}},
	}

	safe := SafeFoods(catalog, []string{"peanut"})
	require.Len(t, safe, 2)
	assert.Equal(t, "Oats Bowl", safe[0].Name)
	assert.Equal(t, "Rice Plate", safe[1].Name)
}

func TestSafeFoodsCaseAndWhitespaceInsensitive(t *testing.T) {
	catalog := []models.FoodItem{
		{Name: "Peanut Salad", Ingredients: []string{"  Peanut ", "lettuce"}},
		{Name: "Milk Shake", Ingredients: []string{"MILK"}},
	}

	safe := SafeFoods(catalog, []string{"peanut", " milk "})
	assert.Empty(t, safe)
}

func TestSafeFoodsExactMatchOnly(t *testing.T) {
	// "peanut" must not knock out "peanut butter"; matching is exact
	// membership, not substring.
	catalog := []models.FoodItem{
		{Name: "PB Toast", Ingredients: []string{"peanut butter", "bread"}},
	}

	safe := SafeFoods(catalog, []string{"peanut"})
	assert.Len(t, safe, 1)
}

func TestBuildWeekShape(t *testing.T) {
	safe := []models.FoodItem{
		{Model: gorm.Model{ID: 11}, Name: "A"},
		{Model: gorm.Model{ID: 22}, Name: "B"},
		{Model: gorm.Model{ID: 33}, Name: "C"},
	}
	weekStart := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	draw := 0
	days := buildWeek(weekStart, safe, func(n int) int {
		draw++
		return draw % n
	})

	require.Len(t, days, 7)
	for i, day := range days {
		assert.Equal(t, weekStart.AddDate(0, 0, i).Format("2006-01-02"), day.Date)
		require.Len(t, day.Meals, len(models.MealSlots))
		for _, slot := range models.MealSlots {
			ids, ok := day.Meals[slot]
			require.True(t, ok, "missing slot %s on day %d", slot, i)
			require.Len(t, ids, 1)
			assert.Contains(t, []uint{11, 22, 33}, ids[0])
		}
	}
}

func TestGenerateWeeklyPlanNoSafeFoods(t *testing.T) {
	db := openTestDB(t)
	svc := NewDietPlanService(db)

	user := models.User{Email: "a@b.com", Password: "x", Allergies: []string{"milk"}}
	require.NoError(t, db.Create(&user).Error)
	seedFoods(t, db, models.FoodItem{Name: "Milk Shake", Ingredients: []string{"milk"}})

	_, err := svc.GenerateWeeklyPlan(user.ID, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, ErrNoSafeFoods)

	var count int64
	db.Model(&models.WeeklyDietPlan{}).Count(&count)
	assert.Zero(t, count, "failed generation must not write a plan")
}

func TestGenerateWeeklyPlanPersistsAndReplaces(t *testing.T) {
	db := openTestDB(t)
	svc := NewDietPlanService(db)

	user := models.User{Email: "a@b.com", Password: "x", Allergies: []string{"peanut"}}
	require.NoError(t, db.Create(&user).Error)
	foods := seedFoods(t, db,
		models.FoodItem{Name: "Oats Bowl", Ingredients: []string{"oats"}},
		models.FoodItem{Name: "Peanut Salad", Ingredients: []string{"peanut"}},
		models.FoodItem{Name: "Rice Plate", Ingredients: []string{"rice"}},
	)
	safeIDs := []uint{foods[0].ID, foods[2].ID}

	weekStart := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	plan, err := svc.GenerateWeeklyPlan(user.ID, weekStart)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", plan.WeekStart)
	require.Len(t, plan.Days, 7)
	for _, day := range plan.Days {
		for _, slot := range models.MealSlots {
			for _, id := range day.Meals[slot] {
				assert.Contains(t, safeIDs, id, "allergen food drafted into plan")
			}
		}
	}

	// Regenerating the same week overwrites Days in place, no second row.
	replaced, err := svc.GenerateWeeklyPlan(user.ID, weekStart)
	require.NoError(t, err)

	var count int64
	db.Model(&models.WeeklyDietPlan{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	var stored models.WeeklyDietPlan
	require.NoError(t, db.Where("user_id = ? AND week_start = ?", user.ID, "2024-03-04").First(&stored).Error)
	assert.Equal(t, replaced.Days, stored.Days)
}

func TestTodayMealsResolvesFoods(t *testing.T) {
	db := openTestDB(t)
	svc := NewDietPlanService(db)

	foods := seedFoods(t, db,
		models.FoodItem{Name: "Oats Bowl", Ingredients: []string{"oats"}, EnergyKcal: 320},
	)

	plan := models.WeeklyDietPlan{
		UserID:    7,
		WeekStart: "2024-03-04",
		Days: []models.DayPlan{{
			Date: "2024-03-05",
			Meals: map[string][]uint{
				"breakfast": {foods[0].ID},
				"lunch":     {9999}, // deleted catalog row
				"snacks":    {foods[0].ID},
				"dinner":    {foods[0].ID},
			},
		}},
	}
	require.NoError(t, db.Create(&plan).Error)

	meals, err := svc.TodayMeals(7, "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "Oats Bowl", meals["breakfast"][0].Name)
	assert.Equal(t, "Unknown Food", meals["lunch"][0].Name)
}

func TestTodayMealsNoPlan(t *testing.T) {
	db := openTestDB(t)
	svc := NewDietPlanService(db)

	_, err := svc.TodayMeals(7, "2024-03-05")
	assert.True(t, errors.Is(err, ErrNotFound))
}
