package services

import (
	"testing"
	"time"

	"github.com/Samgoldwin/hormocare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePrediction(t *testing.T) {
	last := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	predicted, cycleDay := computePrediction(last, 28, today)
	assert.Equal(t, "2024-01-29", predicted.Format("2006-01-02"))
	assert.Equal(t, 14, cycleDay)
}

func TestComputePredictionWrapsPastCycles(t *testing.T) {
	last := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC) // 61 days later

	_, cycleDay := computePrediction(last, 28, today)
	assert.Equal(t, 5, cycleDay)
}

func TestComputePredictionFutureLastDate(t *testing.T) {
	// A last-period date after today must still land in [0, cycleLength).
	last := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)

	_, cycleDay := computePrediction(last, 28, today)
	assert.GreaterOrEqual(t, cycleDay, 0)
	assert.Less(t, cycleDay, 28)
}

func TestRecordPeriodStart(t *testing.T) {
	db := openTestDB(t)
	svc := NewCycleService(db)

	user := models.User{Email: "a@b.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	rec, err := svc.RecordPeriodStart(user.ID, "2024-02-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-10", rec.StartDate)
	assert.False(t, rec.Ended)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "2024-02-10", stored.LastPeriodDate)
}

func TestRecordPeriodStartLeavesPriorOpen(t *testing.T) {
	db := openTestDB(t)
	svc := NewCycleService(db)

	user := models.User{Email: "a@b.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	first, err := svc.RecordPeriodStart(user.ID, "2024-01-10")
	require.NoError(t, err)
	_, err = svc.RecordPeriodStart(user.ID, "2024-02-10")
	require.NoError(t, err)

	var stored models.CycleRecord
	require.NoError(t, db.First(&stored, first.ID).Error)
	assert.False(t, stored.Ended, "starting a new period must not close the previous record")
}

func TestRecordPeriodStartBadDate(t *testing.T) {
	db := openTestDB(t)
	svc := NewCycleService(db)

	_, err := svc.RecordPeriodStart(1, "10/02/2024")
	assert.ErrorIs(t, err, ErrInvalidInput)

	var count int64
	db.Model(&models.CycleRecord{}).Count(&count)
	assert.Zero(t, count)
}

func TestEndPeriod(t *testing.T) {
	db := openTestDB(t)
	svc := NewCycleService(db)

	rec := models.CycleRecord{UserID: 1, StartDate: "2024-02-10"}
	require.NoError(t, db.Create(&rec).Error)

	require.NoError(t, svc.EndPeriod(rec.ID))

	var stored models.CycleRecord
	require.NoError(t, db.First(&stored, rec.ID).Error)
	assert.True(t, stored.Ended)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), stored.EndDate)
}

func TestEndPeriodUnknownID(t *testing.T) {
	db := openTestDB(t)
	svc := NewCycleService(db)

	err := svc.EndPeriod(404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivePeriodPicksMostRecentOpen(t *testing.T) {
	db := openTestDB(t)
	svc := NewCycleService(db)

	require.NoError(t, db.Create(&models.CycleRecord{UserID: 1, StartDate: "2024-01-10", Ended: true, EndDate: "2024-01-15"}).Error)
	require.NoError(t, db.Create(&models.CycleRecord{UserID: 1, StartDate: "2024-02-10"}).Error)
	require.NoError(t, db.Create(&models.CycleRecord{UserID: 1, StartDate: "2024-03-10"}).Error)
	require.NoError(t, db.Create(&models.CycleRecord{UserID: 2, StartDate: "2024-04-01"}).Error)

	rec, err := svc.ActivePeriod(1)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "2024-03-10", rec.StartDate)
}

func TestActivePeriodNone(t *testing.T) {
	db := openTestDB(t)
	svc := NewCycleService(db)

	rec, err := svc.ActivePeriod(1)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestPredictPersistsSnapshot(t *testing.T) {
	db := openTestDB(t)
	svc := NewCycleService(db)

	pred, err := svc.Predict(1, "2024-01-01", 28)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-29", pred.PredictedDate)

	latest, err := svc.LatestPrediction(1)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, pred.ID, latest.ID)
}

func TestPredictRejectsBadInput(t *testing.T) {
	db := openTestDB(t)
	svc := NewCycleService(db)

	_, err := svc.Predict(1, "not-a-date", 28)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Predict(1, "2024-01-01", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
