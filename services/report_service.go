// services/report_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Samgoldwin/hormocare/models"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

type ReportService struct {
	db   *gorm.DB
	groq *GroqService
}

func NewReportService(db *gorm.DB, groq *GroqService) *ReportService {
	return &ReportService{db: db, groq: groq}
}

// WeeklySummary is the aggregate handed to the narration model.
type WeeklySummary struct {
	UserProfile    map[string]interface{} `json:"user_profile"`
	ActivityLogs   []models.ActivityLog   `json:"activity_logs"`
	DietLogs       []models.DietLog       `json:"diet_logs"`
	JournalEntries []models.JournalLog    `json:"journal_entries"`
	CycleDetails   []models.CycleRecord   `json:"cycle_details"`
}

// Aggregate collects the trailing 7 days of data for a user. The
// password hash never leaves the service.
func (s *ReportService) Aggregate(userID uint, today time.Time) (*WeeklySummary, error) {
	from := today.AddDate(0, 0, -6).Format("2006-01-02")
	to := today.Format("2006-01-02")

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	profile := map[string]interface{}{
		"full_name":        user.FullName,
		"email":            user.Email,
		"age":              user.Age,
		"weight":           user.Weight,
		"height":           user.Height,
		"bmi":              user.BMI,
		"cycle_length":     user.CycleLength,
		"last_period_date": user.LastPeriodDate,
		"allergies":        user.Allergies,
		"exercise_types":   user.ExerciseTypes,
	}

	summary := &WeeklySummary{UserProfile: profile}

	if err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Find(&summary.ActivityLogs).Error; err != nil {
		return nil, err
	}
	if err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Find(&summary.DietLogs).Error; err != nil {
		return nil, err
	}
	if err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Find(&summary.JournalEntries).Error; err != nil {
		return nil, err
	}
	if err := s.db.
		Where("user_id = ? AND (start_date BETWEEN ? AND ? OR end_date BETWEEN ? AND ?)",
			userID, from, to, from, to).
		Find(&summary.CycleDetails).Error; err != nil {
		return nil, err
	}
	return summary, nil
}

// WeeklyReportPDF narrates the last 7 days via Groq and renders the
// text as an A4 document. Upstream failure degrades to a fallback line
// in the PDF rather than failing the download.
func (s *ReportService) WeeklyReportPDF(userID uint) ([]byte, error) {
	summary, err := s.Aggregate(userID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("marshal weekly summary: %w", err)
	}

	reportText, err := s.groq.Narrate(string(raw))
	if err != nil {
		log.Printf("weekly report narration failed: %v", err)
		reportText = "Weekly report could not be generated due to error."
	}

	return renderReportPDF(reportText)
}

func renderReportPDF(reportText string) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(true, 60)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 30)
	pdf.CellFormat(0, 40, "HORMOCARE+", "", 1, "C", false, 0, "")

	pdf.SetLineWidth(2)
	y := pdf.GetY() + 6
	pdf.Line(pageW*0.2, y, pageW*0.8, y)
	pdf.SetY(y + 20)

	pdf.SetLeftMargin(60)
	pdf.SetRightMargin(60)

	// Numbered section headers get a bold, larger face; everything
	// else flows as body text. MultiCell handles wrapping and page
	// breaks.
	for _, line := range strings.Split(reportText, "\n") {
		trimmed := strings.TrimSpace(line)
		if isSectionHeader(trimmed) {
			pdf.SetFont("Helvetica", "B", 15)
		} else {
			pdf.SetFont("Helvetica", "", 13)
		}
		if trimmed == "" {
			pdf.Ln(8)
			continue
		}
		pdf.MultiCell(0, 16, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render weekly report PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func isSectionHeader(line string) bool {
	for _, prefix := range []string{"1.", "2.", "3.", "4.", "5.", "6."} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// WeeklyDietPDF renders the user's latest weekly plan: one landscape
// page per meal slot, a date/foods table per page. Food IDs resolve to
// catalog names; unknown IDs print as the raw ID.
func (s *ReportService) WeeklyDietPDF(userID uint) ([]byte, error) {
	var plan models.WeeklyDietPlan
	if err := s.db.
		Where("user_id = ?", userID).
		Order("week_start DESC").
		First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	foodName := func(id uint) string {
		var food models.FoodItem
		if err := s.db.First(&food, id).Error; err != nil {
			return fmt.Sprintf("#%d", id)
		}
		return food.Name
	}

	pdf := gofpdf.New("L", "pt", "Letter", "")
	pageW, _ := pdf.GetPageSize()
	margin := 50.0

	for _, slot := range models.MealSlots {
		pdf.AddPage()

		// Branding on each page
		pdf.SetFont("Helvetica", "B", 26)
		pdf.Text(margin/3, margin/2+10, "Hormocare+")

		title := fmt.Sprintf("Weekly %s Plan", capitalize(slot))
		pdf.SetFont("Helvetica", "", 20)
		pdf.SetXY(0, margin)
		pdf.CellFormat(pageW, 24, title, "", 1, "C", false, 0, "")

		xStart := margin + 100
		y := margin * 1.7
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(xStart, y, "Date")
		pdf.Text(xStart+250, y, capitalize(slot))

		pdf.SetFont("Helvetica", "", 10)
		y += 28
		for _, day := range plan.Days {
			var names []string
			for _, id := range day.Meals[slot] {
				names = append(names, foodName(id))
			}
			line := strings.Join(names, ", ")
			if line == "" {
				line = "-"
			}
			pdf.Text(xStart, y, day.Date)
			pdf.Text(xStart+250, y, line)
			y += 22
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render weekly diet PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
