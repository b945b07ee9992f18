package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Samgoldwin/hormocare/models"
	"github.com/Samgoldwin/hormocare/services"

	"github.com/gin-gonic/gin"
)

type DietController struct {
	Plans   *services.DietPlanService
	Logs    *services.LogService
	Reports *services.ReportService
}

func NewDietController(plans *services.DietPlanService, logs *services.LogService, reports *services.ReportService) *DietController {
	return &DietController{Plans: plans, Logs: logs, Reports: reports}
}

// POST /create_weekly_diet
// Regenerating for the same week replaces the old plan wholesale.
func (dc *DietController) CreateWeeklyDiet(c *gin.Context) {
	uid := c.GetUint("userID")
	weekStart := time.Now().UTC()

	_, err := dc.Plans.GenerateWeeklyPlan(uid, weekStart)
	if err != nil {
		if errors.Is(err, services.ErrNoSafeFoods) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "No safe foods found for your allergies."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	services.EmitAlert(uid, "diet", "Your weekly diet plan is ready.")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Weekly diet created!"})
}

// GET /diet/today
func (dc *DietController) TodayDiet(c *gin.Context) {
	uid := c.GetUint("userID")

	meals, err := dc.Plans.TodayMeals(uid, services.Today())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "No weekly diet set"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "meals": meals})
}

type dietLogInput struct {
	CaloriesConsumed float64  `json:"calories_consumed"`
	TotalAllowed     float64  `json:"total_allowed"`
	Protein          float64  `json:"protein"`
	Carbs            float64  `json:"carbs"`
	Fats             float64  `json:"fats"`
	Foods            []string `json:"foods"`
}

// POST /diet — replace-semantics upsert of today's intake snapshot.
// Fields the client omits bind to their zero value and overwrite
// whatever was stored before.
func (dc *DietController) UpsertDietLog(c *gin.Context) {
	uid := c.GetUint("userID")

	var body dietLogInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	log := models.DietLog{
		CaloriesConsumed: body.CaloriesConsumed,
		TotalAllowed:     body.TotalAllowed,
		Protein:          body.Protein,
		Carbs:            body.Carbs,
		Fats:             body.Fats,
		Foods:            body.Foods,
	}
	if err := dc.Logs.UpsertDietLog(uid, services.Today(), log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /diet
func (dc *DietController) TodayDietLog(c *gin.Context) {
	uid := c.GetUint("userID")

	log, err := dc.Logs.DietLogFor(uid, services.Today())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "diet": log})
}

// GET /download_weekly_diet
func (dc *DietController) DownloadWeeklyDiet(c *gin.Context) {
	uid := c.GetUint("userID")

	pdf, err := dc.Reports.WeeklyDietPDF(uid)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No weekly diet found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="weekly_diet.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
