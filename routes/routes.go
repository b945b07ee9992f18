// routes/routes.go
package routes

import (
	"log"

	"github.com/Samgoldwin/hormocare/config"
	"github.com/Samgoldwin/hormocare/controllers"
	"github.com/Samgoldwin/hormocare/middlewares"
	"github.com/Samgoldwin/hormocare/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
		push = nil
	}
	services.InitAlertDeps(config.DB, hub, push)

	groq := services.NewGroqService()
	plans := services.NewDietPlanService(config.DB)
	logs := services.NewLogService(config.DB)
	cycles := services.NewCycleService(config.DB)
	foods := services.NewFoodService(config.DB)
	exercises := services.NewExerciseService(config.DB)
	reports := services.NewReportService(config.DB, groq)

	foodCtl := controllers.NewFoodController(foods)
	dietCtl := controllers.NewDietController(plans, logs, reports)
	activityCtl := controllers.NewActivityController(logs)
	journalCtl := controllers.NewJournalController(logs)
	cycleCtl := controllers.NewCycleController(cycles)
	chatCtl := controllers.NewChatController(groq)
	exerciseCtl := controllers.NewExerciseController(exercises)
	reportCtl := controllers.NewReportController(reports)
	deviceCtl := controllers.NewDeviceController(push)
	alertCtl := controllers.NewAlertController(hub)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot_password", controllers.ForgotPassword)
		auth.POST("/reset_password", controllers.ResetPassword)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)
		api.POST("/user/dark_mode", controllers.ToggleDarkMode)
		api.POST("/user/notifications/toggle", controllers.ToggleNotifications)

		api.GET("/food/search", foodCtl.SearchFoods)
		api.GET("/food/:id", foodCtl.FoodDetails)

		api.POST("/create_weekly_diet", dietCtl.CreateWeeklyDiet)
		api.GET("/diet/today", dietCtl.TodayDiet)
		api.POST("/diet", dietCtl.UpsertDietLog)
		api.POST("/diet/update", dietCtl.UpsertDietLog)
		api.GET("/diet", dietCtl.TodayDietLog)
		api.GET("/download_weekly_diet", dietCtl.DownloadWeeklyDiet)

		api.POST("/activity", activityCtl.UpsertActivityLog)
		api.GET("/activity", activityCtl.TodayActivityLog)

		api.POST("/journal", journalCtl.UpsertJournalLog)
		api.GET("/journal", journalCtl.ListJournal)
		api.POST("/api/journal", journalCtl.AddJournalEntry)

		api.POST("/record_period", cycleCtl.RecordPeriod)
		api.POST("/end_period", cycleCtl.EndPeriod)
		api.GET("/cycle/active", cycleCtl.ActivePeriod)
		api.POST("/predictor", cycleCtl.Predict)
		api.GET("/predictor/latest", cycleCtl.LatestPrediction)

		api.POST("/chat", chatCtl.Chat)

		api.GET("/exercises/search", exerciseCtl.SearchExercises)
		api.GET("/get_images", exerciseCtl.GetImages)
		api.POST("/save_workout", exerciseCtl.SaveWorkout)

		api.GET("/download_weekly_report_pdf", reportCtl.DownloadWeeklyReport)

		api.POST("/devices/register", deviceCtl.Register)
		api.GET("/alerts", alertCtl.ListAlerts)
		api.GET("/ws/alerts", alertCtl.AlertsWS)
	}

	return r
}
