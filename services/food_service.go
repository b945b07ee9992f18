// services/food_service.go
package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Samgoldwin/hormocare/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// Search matches food names by case-insensitive substring, capped at 10.
func (s *FoodService) Search(query string) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	err := s.db.
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Limit(10).
		Find(&foods).Error
	return foods, err
}

func (s *FoodService) Get(id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := s.db.First(&food, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

// SeedFromCSV loads the meal dataset into food_items. Expected header:
// food_name,ingredients,energy_kcal,protein_g,carb_g,fat_g — with
// ingredients as a semicolon-separated list. Returns the row count.
func (s *FoodService) SeedFromCSV(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open catalog CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read catalog header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"food_name", "ingredients"} {
		if _, ok := col[required]; !ok {
			return 0, fmt.Errorf("catalog CSV missing %q column", required)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	num := func(rec []string, name string) float64 {
		v, _ := strconv.ParseFloat(field(rec, name), 64)
		return v
	}

	count := 0
	for {
		rec, err := r.Read()
		if err != nil {
			break
		}

		var ingredients []string
		for _, ing := range strings.Split(field(rec, "ingredients"), ";") {
			if ing = strings.TrimSpace(ing); ing != "" {
				ingredients = append(ingredients, ing)
			}
		}

		item := models.FoodItem{
			Name:        field(rec, "food_name"),
			Ingredients: ingredients,
			EnergyKcal:  num(rec, "energy_kcal"),
			ProteinG:    num(rec, "protein_g"),
			CarbG:       num(rec, "carb_g"),
			FatG:        num(rec, "fat_g"),
		}
		if item.Name == "" {
			continue
		}
		if err := s.db.Create(&item).Error; err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
