// controllers/cycle_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/Samgoldwin/hormocare/services"

	"github.com/gin-gonic/gin"
)

type CycleController struct {
	Svc *services.CycleService
}

func NewCycleController(svc *services.CycleService) *CycleController {
	return &CycleController{Svc: svc}
}

// POST /record_period {date}
func (cc *CycleController) RecordPeriod(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Date == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Date required"})
		return
	}

	if _, err := cc.Svc.RecordPeriodStart(uid, body.Date); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date format"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	services.EmitAlert(uid, "cycle", "Period start recorded.")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /end_period {cycle_id}
// Absent or unknown ids report unsuccessful without touching anything.
func (cc *CycleController) EndPeriod(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		CycleID uint `json:"cycle_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.CycleID == 0 {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	if err := cc.Svc.EndPeriod(body.CycleID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	services.EmitAlert(uid, "cycle", "Period marked as ended.")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /cycle/active
func (cc *CycleController) ActivePeriod(c *gin.Context) {
	uid := c.GetUint("userID")

	rec, err := cc.Svc.ActivePeriod(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	if rec == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "active_period": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "active_period": rec})
}

type predictorInput struct {
	LastPeriodDate string `json:"last_period_date"`
	CycleLength    *int   `json:"cycle_length"`
}

// POST /predictor {last_period_date, cycle_length}
func (cc *CycleController) Predict(c *gin.Context) {
	uid := c.GetUint("userID")

	var body predictorInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date or cycle length"})
		return
	}

	cycleLength := 28
	if body.CycleLength != nil {
		cycleLength = *body.CycleLength
	}

	pred, err := cc.Svc.Predict(uid, body.LastPeriodDate, cycleLength)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date or cycle length"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	services.EmitAlert(uid, "cycle", "Next period predicted for "+pred.PredictedDate+".")
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"predicted_date": pred.PredictedDate,
		"cycle_day":      pred.CycleDay,
	})
}

// GET /predictor/latest
func (cc *CycleController) LatestPrediction(c *gin.Context) {
	uid := c.GetUint("userID")

	pred, err := cc.Svc.LatestPrediction(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "prediction": pred})
}
