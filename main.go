package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"avion/config"
	"avion/cron"
	"avion/database"
	chatRepoPkg "avion/database/repository/chat"
	reservationRepoPkg "avion/database/repository/reservation"
	"avion/handlers"
	"avion/middleware"
	"avion/routes"
	"avion/services/amadeus"
	"avion/services/assistant"
	"avion/services/booking"
	"avion/services/tasks"
	"avion/services/travel"
	"avion/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	chatRepo := chatRepoPkg.NewCachedRepository(
		chatRepoPkg.NewMongoChatRepo(), utils.GetCacheClient(), 30*time.Minute)

	// services.
	amadeusClient := amadeus.NewClient(amadeus.Options{
		BaseURL:      config.AmadeusBaseURL(),
		ClientID:     config.AppConfig.AmadeusClientID,
		ClientSecret: config.AppConfig.AmadeusClientSecret,
		MaxRetries:   config.AppConfig.AmadeusMaxRetries,
	})
	searchAdapter := amadeus.NewAdapter(amadeusClient, config.AppConfig.FlightResultLimit, logger)

	reminderService := tasks.NewReminderService()
	bookingService := booking.NewBookingService(reservationRepo, reminderService)

	toolset := &assistant.Toolset{
		Search:  searchAdapter,
		Booking: bookingService,
		Weather: travel.NewWeatherService(),
		Logger:  logger.Named("tools"),
	}

	model, err := assistant.NewGeminiModel(
		context.Background(),
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		toolset.Tools(),
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize the chat model: %v", err)
	}
	defer model.Close()

	chatService := assistant.NewChatService(model, toolset, chatRepo)

	chatHandler := handlers.NewChatHandler(chatService)
	reservationHandler := handlers.NewReservationHandler(bookingService)

	routes.SetupRoutes(router, chatHandler, reservationHandler)

	// Start the trip reminder worker.
	cron.InitReminderWorker()

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
