package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitpulse/fitness-tracker/internal/api"
	"fitpulse/fitness-tracker/internal/config"
	"fitpulse/fitness-tracker/internal/repository/mongo"
	"fitpulse/fitness-tracker/internal/scheduler"
	"fitpulse/fitness-tracker/internal/service"
	"fitpulse/fitness-tracker/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Starting FitPulse server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		logrus.Info("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logrus.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logrus.Info("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureNutritionIndexes(ctx, appDB.Collection("nutrition_logs"))
		mongo.EnsureProgressIndexes(ctx, appDB.Collection("progress"))
		mongo.EnsureGoalIndexes(ctx, appDB.Collection("goals"))
		mongo.EnsureReminderIndexes(ctx, appDB.Collection("reminders"))
		mongo.EnsureNotificationIndexes(ctx, appDB.Collection("notifications"))
		logrus.Info("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize S3 storage")
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	nutritionRepo := mongo.NewMongoNutritionRepository(appDB)
	progressRepo := mongo.NewMongoProgressRepository(appDB)
	goalRepo := mongo.NewMongoGoalRepository(appDB)
	reminderRepo := mongo.NewMongoReminderRepository(appDB)
	notificationRepo := mongo.NewMongoNotificationRepository(appDB)
	feedbackRepo := mongo.NewMongoFeedbackRepository(appDB)

	// --- Initialize Services ---
	notificationService := service.NewNotificationService(notificationRepo)
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	profileService := service.NewProfileService(userRepo, workoutRepo, progressRepo, nutritionRepo, fileStorage)
	workoutService := service.NewWorkoutService(workoutRepo, notificationService)
	nutritionService := service.NewNutritionService(nutritionRepo)
	progressService := service.NewProgressService(progressRepo, goalRepo, notificationService)
	goalService := service.NewGoalService(goalRepo)
	reminderService := service.NewReminderService(reminderRepo, notificationService)
	feedbackService := service.NewFeedbackService(feedbackRepo)

	// --- Reminder Scanner ---
	scannerCtx, stopScanner := context.WithCancel(context.Background())
	defer stopScanner()
	scanner := scheduler.NewReminderScanner(userRepo, reminderRepo, notificationService, cfg.Scheduler.Interval)
	scanner.Start(scannerCtx)

	// --- Initialize Gin Engine ---
	router := gin.Default()

	api.SetupRoutes(
		router,
		cfg.JWT.Secret,
		authService,
		profileService,
		workoutService,
		nutritionService,
		progressService,
		goalService,
		reminderService,
		notificationService,
		feedbackService,
	)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.WithField("address", cfg.Server.Address).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	stopScanner()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}

	logrus.Info("Server exiting.")
}
