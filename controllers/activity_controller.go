// controllers/activity_controller.go
package controllers

import (
	"net/http"

	"github.com/Samgoldwin/hormocare/models"
	"github.com/Samgoldwin/hormocare/services"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	Logs *services.LogService
}

func NewActivityController(logs *services.LogService) *ActivityController {
	return &ActivityController{Logs: logs}
}

type activityLogInput struct {
	CaloriesBurnt float64  `json:"calories_burnt"`
	GoalCalories  float64  `json:"goal_calories"`
	Steps         float64  `json:"steps"`
	GoalSteps     float64  `json:"goal_steps"`
	Hours         float64  `json:"hours"`
	GoalHours     float64  `json:"goal_hours"`
	Activities    []string `json:"activities"`
}

// POST /activity — full replacement of today's activity snapshot.
func (ac *ActivityController) UpsertActivityLog(c *gin.Context) {
	uid := c.GetUint("userID")

	var body activityLogInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	log := models.ActivityLog{
		CaloriesBurnt: body.CaloriesBurnt,
		GoalCalories:  body.GoalCalories,
		Steps:         body.Steps,
		GoalSteps:     body.GoalSteps,
		Hours:         body.Hours,
		GoalHours:     body.GoalHours,
		Activities:    body.Activities,
	}
	if err := ac.Logs.UpsertActivityLog(uid, services.Today(), log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /activity
func (ac *ActivityController) TodayActivityLog(c *gin.Context) {
	uid := c.GetUint("userID")

	log, err := ac.Logs.ActivityLogFor(uid, services.Today())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "activity": log})
}
