package services

import (
	"testing"

	"github.com/Samgoldwin/hormocare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertDietLogCreates(t *testing.T) {
	db := openTestDB(t)
	svc := NewLogService(db)

	in := models.DietLog{
		CaloriesConsumed: 1450,
		TotalAllowed:     1800,
		Protein:          60,
		Foods:            []string{"oats", "salad"},
	}
	require.NoError(t, svc.UpsertDietLog(3, "2024-03-05", in))

	got, err := svc.DietLogFor(3, "2024-03-05")
	require.NoError(t, err)
	assert.EqualValues(t, 1450, got.CaloriesConsumed)
	assert.Equal(t, []string{"oats", "salad"}, got.Foods)
}

func TestUpsertDietLogReplacesWholesale(t *testing.T) {
	db := openTestDB(t)
	svc := NewLogService(db)

	require.NoError(t, svc.UpsertDietLog(3, "2024-03-05", models.DietLog{
		CaloriesConsumed: 1450,
		Protein:          60,
		Foods:            []string{"oats"},
	}))

	// Second write omits protein and foods; they reset, not merge.
	require.NoError(t, svc.UpsertDietLog(3, "2024-03-05", models.DietLog{
		CaloriesConsumed: 1600,
	}))

	got, err := svc.DietLogFor(3, "2024-03-05")
	require.NoError(t, err)
	assert.EqualValues(t, 1600, got.CaloriesConsumed)
	assert.Zero(t, got.Protein)
	assert.Empty(t, got.Foods)

	var count int64
	db.Model(&models.DietLog{}).Where("user_id = ?", 3).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDietLogForAbsentDay(t *testing.T) {
	db := openTestDB(t)
	svc := NewLogService(db)

	got, err := svc.DietLogFor(3, "2024-03-05")
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.UserID)
	assert.Equal(t, "2024-03-05", got.Date)
	assert.Zero(t, got.CaloriesConsumed)
}

func TestUpsertActivityLogScopedPerUser(t *testing.T) {
	db := openTestDB(t)
	svc := NewLogService(db)

	require.NoError(t, svc.UpsertActivityLog(1, "2024-03-05", models.ActivityLog{Steps: 8000}))
	require.NoError(t, svc.UpsertActivityLog(2, "2024-03-05", models.ActivityLog{Steps: 3000}))

	got, err := svc.ActivityLogFor(1, "2024-03-05")
	require.NoError(t, err)
	assert.EqualValues(t, 8000, got.Steps)

	got, err = svc.ActivityLogFor(2, "2024-03-05")
	require.NoError(t, err)
	assert.EqualValues(t, 3000, got.Steps)
}

func TestJournalLogUpsertAndList(t *testing.T) {
	db := openTestDB(t)
	svc := NewLogService(db)

	require.NoError(t, svc.UpsertJournalLog(5, "2024-03-04", models.JournalLog{Mood: "calm"}))
	require.NoError(t, svc.UpsertJournalLog(5, "2024-03-05", models.JournalLog{Mood: "tired"}))
	require.NoError(t, svc.UpsertJournalLog(5, "2024-03-05", models.JournalLog{Mood: "rested"}))

	rows, err := svc.ListJournalLogs(5, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "rested", rows[0].Mood) // newest date first
	assert.Equal(t, "calm", rows[1].Mood)
}

func TestAddJournalEntryAppends(t *testing.T) {
	db := openTestDB(t)
	svc := NewLogService(db)

	require.NoError(t, svc.AddJournalEntry(models.JournalEntry{UserID: 5, Date: "2024-03-05", Mood: "ok"}))
	require.NoError(t, svc.AddJournalEntry(models.JournalEntry{UserID: 5, Date: "2024-03-05", Mood: "better"}))

	var count int64
	db.Model(&models.JournalEntry{}).Where("user_id = ?", 5).Count(&count)
	assert.EqualValues(t, 2, count)
}
