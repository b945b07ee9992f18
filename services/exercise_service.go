// services/exercise_service.go
package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Samgoldwin/hormocare/models"

	"gorm.io/gorm"
)

const (
	exerciseDBURL = "https://exercisedb-api1.p.rapidapi.com/api/v1/exercises"
	yogaAPIURL    = "https://yoga-api-nzy4.onrender.com/v1/poses?level=beginner"
)

type ExerciseService struct {
	db          *gorm.DB
	client      *http.Client
	rapidAPIKey string
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{
		db:          db,
		client:      &http.Client{Timeout: 10 * time.Second},
		rapidAPIKey: os.Getenv("RAPIDAPI_KEY"),
	}
}

// SimplifiedExercise is the flattened shape the frontend consumes.
type SimplifiedExercise struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	GifURL    string `json:"gifUrl"`
	BodyPart  string `json:"bodyPart"`
	Equipment string `json:"equipment"`
}

type exerciseDBResponse struct {
	Data []struct {
		ExerciseID string   `json:"exerciseId"`
		ID         string   `json:"id"`
		Name       string   `json:"name"`
		ImageURL   string   `json:"imageUrl"`
		GifURL     string   `json:"gifUrl"`
		BodyParts  []string `json:"bodyParts"`
		Equipments []string `json:"equipments"`
	} `json:"data"`
}

// Search proxies the ExerciseDB RapidAPI endpoint. Failures degrade:
// the route serves an empty list instead of a raw upstream error.
func (s *ExerciseService) Search(name, keywords string, limit int) ([]SimplifiedExercise, error) {
	if limit <= 0 {
		limit = 10
	}

	q := url.Values{}
	q.Set("name", name)
	q.Set("keywords", keywords)
	q.Set("limit", fmt.Sprintf("%d", limit))

	req, err := http.NewRequest("GET", exerciseDBURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create exercise request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", s.rapidAPIKey)
	req.Header.Set("x-rapidapi-host", "exercisedb-api1.p.rapidapi.com")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamStatus, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read exercise response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: exercisedb api %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var out exerciseDBResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamDecode, err)
	}

	simplified := make([]SimplifiedExercise, 0, len(out.Data))
	for _, ex := range out.Data {
		id := ex.ExerciseID
		if id == "" {
			id = ex.ID
		}
		gif := ex.ImageURL
		if gif == "" {
			gif = ex.GifURL
		}
		simplified = append(simplified, SimplifiedExercise{
			ID:        id,
			Name:      ex.Name,
			GifURL:    gif,
			BodyPart:  strings.Join(ex.BodyParts, ", "),
			Equipment: strings.Join(ex.Equipments, ", "),
		})
	}
	return simplified, nil
}

// ExerciseImage is one card in the workout picker.
type ExerciseImage struct {
	Name          string `json:"name"`
	Img           string `json:"img"`
	TargetMuscles string `json:"targetMuscles,omitempty"`
	Instructions  string `json:"instructions,omitempty"`
	Description   string `json:"description,omitempty"`
}

// HIITExercises serves body-weight movements from the local catalog.
func (s *ExerciseService) HIITExercises() ([]ExerciseImage, error) {
	var rows []models.Exercise
	err := s.db.
		Where("LOWER(equipment) LIKE ? OR LOWER(equipment) LIKE ?", "%body only%", "%no equipment%").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ExerciseImage, 0, len(rows))
	for _, ex := range rows {
		img := ""
		if len(ex.Images) > 0 {
			img = "/static/exercises/" + ex.Images[0]
		}
		out = append(out, ExerciseImage{
			Name:          ex.Name,
			Img:           img,
			TargetMuscles: strings.Join(ex.PrimaryMuscles, ", "),
			Instructions:  strings.Join(ex.Instructions, " "),
		})
	}
	return out, nil
}

// AerobicImages is a static fallback list.
func (s *ExerciseService) AerobicImages() []ExerciseImage {
	return []ExerciseImage{
		{Img: "https://example.com/aerobic1.png"},
		{Img: "https://example.com/aerobic2.png"},
		{Img: "https://example.com/aerobic3.png"},
	}
}

type yogaAPIResponse struct {
	Poses []struct {
		EnglishName     string `json:"english_name"`
		PoseDescription string `json:"pose_description"`
		URLPng          string `json:"url_png"`
	} `json:"poses"`
}

// YogaPoses proxies the beginner poses of the public yoga API.
func (s *ExerciseService) YogaPoses() ([]ExerciseImage, error) {
	resp, err := s.client.Get(yogaAPIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamStatus, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read yoga response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: yoga api %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var out yogaAPIResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamDecode, err)
	}

	result := make([]ExerciseImage, 0, len(out.Poses))
	for _, pose := range out.Poses {
		result = append(result, ExerciseImage{
			Name:        pose.EnglishName,
			Description: pose.PoseDescription,
			Img:         pose.URLPng,
		})
	}
	return result, nil
}

// SaveWorkout persists one completed workout.
func (s *ExerciseService) SaveWorkout(w models.Workout) error {
	return s.db.Create(&w).Error
}
