// controllers/report_controller.go
package controllers

import (
	"net/http"

	"github.com/Samgoldwin/hormocare/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Svc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Svc: svc}
}

// GET /download_weekly_report_pdf
func (rc *ReportController) DownloadWeeklyReport(c *gin.Context) {
	uid := c.GetUint("userID")

	pdf, err := rc.Svc.WeeklyReportPDF(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not build weekly report"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="weekly_report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
