// services/daily_log_service.go
package services

import (
	"time"

	"github.com/Samgoldwin/hormocare/models"

	"gorm.io/gorm"
)

type LogService struct {
	db *gorm.DB
}

func NewLogService(db *gorm.DB) *LogService {
	return &LogService{db: db}
}

// Today returns the UTC calendar date used as the daily log key. The
// original app keys every per-day document on the UTC date, so reads
// and writes agree across timezones.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// UpsertDietLog replaces the tracked fields for (user, date) wholesale.
// Callers pass a fully populated log built from the request body, so a
// field the client omitted arrives here already zeroed.
func (s *LogService) UpsertDietLog(userID uint, date string, in models.DietLog) error {
	in.UserID = userID
	in.Date = date

	var row models.DietLog
	return s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(in).
		FirstOrCreate(&row).Error
}

// DietLogFor returns the day's log, or a zero-valued view when none
// exists. Absence is not an error.
func (s *LogService) DietLogFor(userID uint, date string) (models.DietLog, error) {
	var row models.DietLog
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.DietLog{UserID: userID, Date: date}, nil
		}
		return row, err
	}
	return row, nil
}

func (s *LogService) UpsertActivityLog(userID uint, date string, in models.ActivityLog) error {
	in.UserID = userID
	in.Date = date

	var row models.ActivityLog
	return s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(in).
		FirstOrCreate(&row).Error
}

func (s *LogService) ActivityLogFor(userID uint, date string) (models.ActivityLog, error) {
	var row models.ActivityLog
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.ActivityLog{UserID: userID, Date: date}, nil
		}
		return row, err
	}
	return row, nil
}

func (s *LogService) UpsertJournalLog(userID uint, date string, in models.JournalLog) error {
	in.UserID = userID
	in.Date = date

	var row models.JournalLog
	return s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(in).
		FirstOrCreate(&row).Error
}

func (s *LogService) JournalLogFor(userID uint, date string) (models.JournalLog, error) {
	var row models.JournalLog
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.JournalLog{UserID: userID, Date: date}, nil
		}
		return row, err
	}
	return row, nil
}

func (s *LogService) ListJournalLogs(userID uint, limit int) ([]models.JournalLog, error) {
	if limit <= 0 {
		limit = 30
	}
	var rows []models.JournalLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// AddJournalEntry is the append-only path: each call inserts a row.
func (s *LogService) AddJournalEntry(entry models.JournalEntry) error {
	return s.db.Create(&entry).Error
}
