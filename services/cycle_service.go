// services/cycle_service.go
package services

import (
	"fmt"
	"time"

	"github.com/Samgoldwin/hormocare/models"

	"gorm.io/gorm"
)

type CycleService struct {
	db *gorm.DB
}

func NewCycleService(db *gorm.DB) *CycleService {
	return &CycleService{db: db}
}

// RecordPeriodStart opens a new cycle record and stamps the user's
// last_period_date. Prior open records are left open on purpose: the
// product has not decided whether starting a period implicitly ends
// the previous one, so overlapping open records are possible.
func (s *CycleService) RecordPeriodStart(userID uint, date string) (*models.CycleRecord, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidInput, date)
	}

	rec := models.CycleRecord{
		UserID:    userID,
		StartDate: date,
		Ended:     false,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_period_date", date).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// EndPeriod closes the named record, stamping today's date as the end.
// The record id is trusted as-is: ownership is not verified here, which
// mirrors the current product behavior.
func (s *CycleService) EndPeriod(cycleID uint) error {
	var rec models.CycleRecord
	if err := s.db.First(&rec, cycleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}

	rec.Ended = true
	rec.EndDate = time.Now().UTC().Format("2006-01-02")
	return s.db.Save(&rec).Error
}

// ActivePeriod returns the most recently started open record, or nil.
func (s *CycleService) ActivePeriod(userID uint) (*models.CycleRecord, error) {
	var rec models.CycleRecord
	err := s.db.
		Where("user_id = ? AND ended = ?", userID, false).
		Order("start_date DESC").
		First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// computePrediction is the date arithmetic behind /predictor:
// predicted = last + cycleLength days; cycleDay = (today-last) mod cycleLength.
func computePrediction(lastPeriod time.Time, cycleLength int, today time.Time) (time.Time, int) {
	predicted := lastPeriod.AddDate(0, 0, cycleLength)
	elapsed := int(today.Sub(lastPeriod).Hours() / 24)
	cycleDay := elapsed % cycleLength
	if cycleDay < 0 {
		cycleDay += cycleLength
	}
	return predicted, cycleDay
}

// Predict computes and persists a prediction snapshot.
func (s *CycleService) Predict(userID uint, lastPeriodDate string, cycleLength int) (*models.CyclePrediction, error) {
	last, err := time.Parse("2006-01-02", lastPeriodDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidInput, lastPeriodDate)
	}
	if cycleLength <= 0 {
		return nil, fmt.Errorf("%w: cycle length must be positive", ErrInvalidInput)
	}

	predicted, cycleDay := computePrediction(last, cycleLength, time.Now().UTC())

	pred := models.CyclePrediction{
		UserID:         userID,
		LastPeriodDate: last.Format("2006-01-02"),
		CycleLength:    cycleLength,
		PredictedDate:  predicted.Format("2006-01-02"),
		CycleDay:       cycleDay,
	}
	if err := s.db.Create(&pred).Error; err != nil {
		return nil, err
	}
	return &pred, nil
}

// LatestPrediction returns the most recent prediction, or nil.
func (s *CycleService) LatestPrediction(userID uint) (*models.CyclePrediction, error) {
	var pred models.CyclePrediction
	err := s.db.
		Where("user_id = ?", userID).
		Order("id DESC").
		First(&pred).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &pred, nil
}
