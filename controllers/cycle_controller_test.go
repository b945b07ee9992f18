package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Samgoldwin/hormocare/models"
	"github.com/Samgoldwin/hormocare/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCycleTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.CycleRecord{}, &models.CyclePrediction{}, &models.Alert{}))

	ctl := NewCycleController(services.NewCycleService(db))

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", uint(1)) })
	r.POST("/record_period", ctl.RecordPeriod)
	r.POST("/end_period", ctl.EndPeriod)
	r.GET("/cycle/active", ctl.ActivePeriod)
	r.POST("/predictor", ctl.Predict)
	return r, db
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecordPeriodEndpoint(t *testing.T) {
	r, db := newCycleTestRouter(t)
	require.NoError(t, db.Create(&models.User{Email: "a@b.com", Password: "x"}).Error)

	w := doJSON(r, http.MethodPost, "/record_period", `{"date":"2024-02-10"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	var count int64
	db.Model(&models.CycleRecord{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRecordPeriodMissingDate(t *testing.T) {
	r, _ := newCycleTestRouter(t)

	w := doJSON(r, http.MethodPost, "/record_period", `{}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Date required", resp["message"])
}

func TestEndPeriodMissingID(t *testing.T) {
	r, db := newCycleTestRouter(t)
	require.NoError(t, db.Create(&models.CycleRecord{UserID: 1, StartDate: "2024-02-10"}).Error)

	w := doJSON(r, http.MethodPost, "/end_period", `{}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])

	var rec models.CycleRecord
	require.NoError(t, db.First(&rec).Error)
	assert.False(t, rec.Ended, "missing id must not end anything")
}

func TestEndPeriodUnknownIDEndpoint(t *testing.T) {
	r, _ := newCycleTestRouter(t)

	w := doJSON(r, http.MethodPost, "/end_period", `{"cycle_id":404}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}

func TestPredictorEndpoint(t *testing.T) {
	r, _ := newCycleTestRouter(t)

	w := doJSON(r, http.MethodPost, "/predictor", `{"last_period_date":"2024-01-01","cycle_length":28}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "2024-01-29", resp["predicted_date"])
}

func TestPredictorBadDate(t *testing.T) {
	r, _ := newCycleTestRouter(t)

	w := doJSON(r, http.MethodPost, "/predictor", `{"last_period_date":"01/01/2024"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActivePeriodEndpointEmpty(t *testing.T) {
	r, _ := newCycleTestRouter(t)

	w := doJSON(r, http.MethodGet, "/cycle/active", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp["active_period"])
}
