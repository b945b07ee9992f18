// controllers/exercise_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/Samgoldwin/hormocare/models"
	"github.com/Samgoldwin/hormocare/services"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	Svc *services.ExerciseService
}

func NewExerciseController(svc *services.ExerciseService) *ExerciseController {
	return &ExerciseController{Svc: svc}
}

// GET /exercises/search?name=&keywords=
// Upstream failures degrade to an empty result instead of an error page.
func (ec *ExerciseController) SearchExercises(c *gin.Context) {
	name := c.Query("name")
	keywords := c.Query("keywords")

	results, err := ec.Svc.Search(name, keywords, 10)
	if err != nil {
		log.Printf("exercise search failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": true, "exercises": []services.SimplifiedExercise{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "exercises": results})
}

// GET /get_images?type=hiit|aerobic|yoga
func (ec *ExerciseController) GetImages(c *gin.Context) {
	switch c.Query("type") {
	case "hiit":
		images, err := ec.Svc.HIITExercises()
		if err != nil {
			log.Printf("hiit lookup failed: %v", err)
			images = []services.ExerciseImage{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "images": images})
	case "aerobic":
		c.JSON(http.StatusOK, gin.H{"success": true, "images": ec.Svc.AerobicImages()})
	case "yoga":
		poses, err := ec.Svc.YogaPoses()
		if err != nil {
			log.Printf("yoga lookup failed: %v", err)
			poses = []services.ExerciseImage{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "images": poses})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "images": []services.ExerciseImage{}})
	}
}

type workoutInput struct {
	WorkoutType string   `json:"workout_type" binding:"required"`
	Exercises   []string `json:"exercises"`
	Duration    float64  `json:"duration"`
	RestPeriod  float64  `json:"rest_period"`
	Intensity   float64  `json:"intensity"`
}

// POST /save_workout
func (ec *ExerciseController) SaveWorkout(c *gin.Context) {
	uid := c.GetUint("userID")

	var body workoutInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Workout type required"})
		return
	}

	w := models.Workout{
		UserID:      uid,
		WorkoutType: body.WorkoutType,
		Exercises:   body.Exercises,
		Duration:    body.Duration,
		RestPeriod:  body.RestPeriod,
		Intensity:   body.Intensity,
	}
	if err := ec.Svc.SaveWorkout(w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Workout saved!"})
}
