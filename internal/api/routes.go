package api

import (
	"net/http"

	"fitpulse/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler into the gin engine.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	workoutService service.WorkoutService,
	nutritionService service.NutritionService,
	progressService service.ProgressService,
	goalService service.GoalService,
	reminderService service.ReminderService,
	notificationService service.NotificationService,
	feedbackService service.FeedbackService,
) {
	authHandler := NewAuthHandler(authService, profileService)
	profileHandler := NewProfileHandler(profileService)
	workoutHandler := NewWorkoutHandler(workoutService)
	nutritionHandler := NewNutritionHandler(nutritionService)
	progressHandler := NewProgressHandler(progressService)
	goalHandler := NewGoalHandler(goalService)
	reminderHandler := NewReminderHandler(reminderService)
	notificationHandler := NewNotificationHandler(notificationService)
	feedbackHandler := NewFeedbackHandler(feedbackService)

	router.Use(IdentityMiddleware(jwtSecret))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/register", authHandler.Register)
		apiV1.POST("/login", authHandler.Login)

		// Feedback listing is public; submission needs a user id.
		apiV1.GET("/feedback", feedbackHandler.List)
		apiV1.POST("/feedback", feedbackHandler.Create)

		workoutGroup := apiV1.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.Create)
			workoutGroup.GET("", workoutHandler.List)
			workoutGroup.POST("/:id", workoutHandler.Update)
			workoutGroup.DELETE("/:id", workoutHandler.Delete)
		}

		nutritionGroup := apiV1.Group("/nutrition")
		{
			nutritionGroup.POST("", nutritionHandler.Create)
			nutritionGroup.GET("", nutritionHandler.List)
			nutritionGroup.POST("/:id", nutritionHandler.Update)
			nutritionGroup.DELETE("/:id", nutritionHandler.Delete)
		}

		progressGroup := apiV1.Group("/progress")
		{
			progressGroup.POST("", progressHandler.Create)
			progressGroup.GET("", progressHandler.List)
			progressGroup.POST("/:id", progressHandler.Update)
			progressGroup.DELETE("/:id", progressHandler.Delete)
		}

		goalGroup := apiV1.Group("/goals")
		{
			goalGroup.POST("", goalHandler.Create)
			goalGroup.GET("", goalHandler.List)
			goalGroup.POST("/:id", goalHandler.Update)
			goalGroup.DELETE("/:id", goalHandler.Delete)
		}

		reminderGroup := apiV1.Group("/reminders")
		{
			reminderGroup.POST("", reminderHandler.Create)
			reminderGroup.GET("", reminderHandler.List)
			reminderGroup.POST("/:id", reminderHandler.Update)
			reminderGroup.PATCH("/:id", reminderHandler.Toggle)
			reminderGroup.DELETE("/:id", reminderHandler.Delete)
		}

		notificationGroup := apiV1.Group("/notifications")
		{
			notificationGroup.GET("", notificationHandler.List)
			notificationGroup.POST("", notificationHandler.Create)
			notificationGroup.POST("/read-all", notificationHandler.MarkAllRead)
			notificationGroup.POST("/:id", notificationHandler.MarkRead)
			notificationGroup.DELETE("/:id", notificationHandler.Delete)
		}

		profileGroup := apiV1.Group("/profile")
		{
			profileGroup.GET("", profileHandler.Get)
			profileGroup.POST("", profileHandler.Update)
			profileGroup.DELETE("", profileHandler.Delete)
		}

		preferencesGroup := apiV1.Group("/preferences")
		{
			preferencesGroup.GET("", profileHandler.GetPreferences)
			preferencesGroup.POST("", profileHandler.UpdatePreferences)
		}
	}
}
