// services/diet_plan_service.go
package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Samgoldwin/hormocare/models"

	"gorm.io/gorm"
)

const planDays = 7

type DietPlanService struct {
	db *gorm.DB
}

func NewDietPlanService(db *gorm.DB) *DietPlanService {
	return &DietPlanService{db: db}
}

// SafeFoods filters the catalog down to items whose ingredient list
// shares nothing with the user's allergens. Matching is exact string
// membership after trimming and lowercasing; no fuzzy matching.
// An empty allergen set returns the catalog unchanged.
func SafeFoods(catalog []models.FoodItem, allergens []string) []models.FoodItem {
	if len(allergens) == 0 {
		return catalog
	}

	blocked := make(map[string]struct{}, len(allergens))
	for _, a := range allergens {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			blocked[a] = struct{}{}
		}
	}

	safe := make([]models.FoodItem, 0, len(catalog))
	for _, f := range catalog {
		ok := true
		for _, ing := range f.Ingredients {
			if _, hit := blocked[strings.ToLower(strings.TrimSpace(ing))]; hit {
				ok = false
				break
			}
		}
		if ok {
			safe = append(safe, f)
		}
	}
	return safe
}

// buildWeek draws one food per meal slot per day, uniformly and with
// replacement. pick(n) returns an index in [0,n); injected so tests can
// pin the draws.
func buildWeek(weekStart time.Time, safe []models.FoodItem, pick func(int) int) []models.DayPlan {
	days := make([]models.DayPlan, 0, planDays)
	for i := 0; i < planDays; i++ {
		meals := make(map[string][]uint, len(models.MealSlots))
		for _, slot := range models.MealSlots {
			meals[slot] = []uint{safe[pick(len(safe))].ID}
		}
		days = append(days, models.DayPlan{
			Date:  weekStart.AddDate(0, 0, i).Format("2006-01-02"),
			Meals: meals,
		})
	}
	return days
}

// GenerateWeeklyPlan builds and persists a 7-day plan starting at
// weekStart (inclusive). The write replaces any existing plan for the
// same (user, week_start) key wholesale; two concurrent generations
// race on last-write-wins, which is fine for an idempotent overwrite.
// Returns ErrNoSafeFoods (and writes nothing) when the filtered
// catalog is empty.
func (s *DietPlanService) GenerateWeeklyPlan(userID uint, weekStart time.Time) (*models.WeeklyDietPlan, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	var catalog []models.FoodItem
	if err := s.db.Find(&catalog).Error; err != nil {
		return nil, fmt.Errorf("load food catalog: %w", err)
	}

	safe := SafeFoods(catalog, user.Allergies)
	if len(safe) == 0 {
		return nil, ErrNoSafeFoods
	}

	plan := models.WeeklyDietPlan{
		UserID:    userID,
		WeekStart: weekStart.Format("2006-01-02"),
		Days:      buildWeek(weekStart, safe, rand.Intn),
	}

	err := s.db.
		Where("user_id = ? AND week_start = ?", plan.UserID, plan.WeekStart).
		Assign(models.WeeklyDietPlan{Days: plan.Days}).
		FirstOrCreate(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// TodayMeals resolves the food IDs of today's DayPlan into full catalog
// rows, keyed by meal slot. Missing catalog rows render as a placeholder
// rather than dropping the slot entry. Returns ErrNotFound when no plan
// covers the date.
func (s *DietPlanService) TodayMeals(userID uint, date string) (map[string][]models.FoodItem, error) {
	var plans []models.WeeklyDietPlan
	if err := s.db.
		Where("user_id = ?", userID).
		Order("week_start DESC").
		Limit(2).
		Find(&plans).Error; err != nil {
		return nil, err
	}

	for _, plan := range plans {
		for _, day := range plan.Days {
			if day.Date != date {
				continue
			}
			meals := make(map[string][]models.FoodItem, len(day.Meals))
			for slot, ids := range day.Meals {
				foods := make([]models.FoodItem, 0, len(ids))
				for _, id := range ids {
					var food models.FoodItem
					if err := s.db.First(&food, id).Error; err != nil {
						foods = append(foods, models.FoodItem{Name: "Unknown Food"})
						continue
					}
					foods = append(foods, food)
				}
				meals[slot] = foods
			}
			return meals, nil
		}
	}
	return nil, ErrNotFound
}

// LatestPlan returns the most recently started weekly plan.
func (s *DietPlanService) LatestPlan(userID uint) (*models.WeeklyDietPlan, error) {
	var plan models.WeeklyDietPlan
	err := s.db.
		Where("user_id = ?", userID).
		Order("week_start DESC").
		First(&plan).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}
