// controllers/journal_controller.go
package controllers

import (
	"net/http"

	"github.com/Samgoldwin/hormocare/models"
	"github.com/Samgoldwin/hormocare/services"

	"github.com/gin-gonic/gin"
)

type JournalController struct {
	Logs *services.LogService
}

func NewJournalController(logs *services.LogService) *JournalController {
	return &JournalController{Logs: logs}
}

type journalLogInput struct {
	Mood              string  `json:"mood"`
	SleepQuality      float64 `json:"sleep_quality"`
	BehavioralPattern string  `json:"behavioral_pattern"`
	Notes             string  `json:"notes"`
}

// POST /journal — replaces today's journal log.
func (jc *JournalController) UpsertJournalLog(c *gin.Context) {
	uid := c.GetUint("userID")

	var body journalLogInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	log := models.JournalLog{
		Mood:              body.Mood,
		SleepQuality:      body.SleepQuality,
		BehavioralPattern: body.BehavioralPattern,
		Notes:             body.Notes,
	}
	if err := jc.Logs.UpsertJournalLog(uid, services.Today(), log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /journal — today's log plus the 30 most recent entries.
func (jc *JournalController) ListJournal(c *gin.Context) {
	uid := c.GetUint("userID")

	today, err := jc.Logs.JournalLogFor(uid, services.Today())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	entries, err := jc.Logs.ListJournalLogs(uid, 30)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "today": today, "entries": entries})
}

type journalEntryInput struct {
	Date     string `json:"date"`
	Mood     string `json:"mood"`
	Stress   string `json:"stress"`
	Symptoms string `json:"symptoms"`
	Notes    string `json:"notes"`
	FeelData string `json:"feelData"`
}

// POST /api/journal — append-only entry insert.
func (jc *JournalController) AddJournalEntry(c *gin.Context) {
	uid := c.GetUint("userID")

	var body journalEntryInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	entry := models.JournalEntry{
		UserID:   uid,
		Date:     body.Date,
		Mood:     body.Mood,
		Stress:   body.Stress,
		Symptoms: body.Symptoms,
		Notes:    body.Notes,
		FeelData: body.FeelData,
	}
	if err := jc.Logs.AddJournalEntry(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}
