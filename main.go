// File: meetly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetly/config"
	"meetly/cron"
	"meetly/database"
	bookingRepoPkg "meetly/database/repository/booking"
	organizerRepoPkg "meetly/database/repository/organizer"
	settingsRepoPkg "meetly/database/repository/settings"
	"meetly/handlers"
	"meetly/middleware"
	"meetly/routes"
	"meetly/services/availability"
	"meetly/services/booking"
	"meetly/services/notification"
	"meetly/services/organizer"
	"meetly/services/reminder"
	"meetly/services/settings"
	"meetly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()
	organizerRepo := organizerRepoPkg.NewMongoOrganizerRepo()

	// services.
	cacheClient := utils.GetCacheClient()

	availabilityService := &availability.DefaultAvailabilityService{
		Settings: settingsRepo,
		Bookings: bookingRepo,
		Cache:    cacheClient,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:  bookingRepo,
		Cache: cacheClient,
	}
	settingsService := &settings.DefaultSettingsService{
		Repo:  settingsRepo,
		Cache: cacheClient,
	}
	organizerService := &organizer.DefaultOrganizerService{
		Repo: organizerRepo,
	}

	// reminder pipeline.
	dispatcher := &reminder.Dispatcher{
		Repo:           bookingRepo,
		Mailer:         notification.NewSMTPMailer(),
		StartTolerance: time.Duration(config.AppConfig.ReminderStartToleranceMin) * time.Minute,
	}
	cron.InitReminderWorker(dispatcher)

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		OrganizerRepo: organizerRepo,
		Auth:          handlers.NewAuthHandler(organizerService),
		Settings:      handlers.NewSettingsHandler(settingsService),
		Slots:         handlers.NewSlotHandler(availabilityService),
		Bookings:      handlers.NewBookingHandler(bookingService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
