// File: halabooking/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"halabooking/config"
	"halabooking/cron"
	"halabooking/database"
	bookingRepo "halabooking/database/repository/booking"
	"halabooking/handlers"
	"halabooking/middleware"
	"halabooking/routes"
	bookingSvc "halabooking/services/booking"
	"halabooking/services/notification"
	"halabooking/services/payment"
	"halabooking/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// The gateway client is built once at startup; a missing key fails here,
	// not on the first booking.
	gateway, err := payment.NewStripeGateway(config.AppConfig.StripeKey, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize payment gateway: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	repo := bookingRepo.NewMongoBookingRepo()

	// Verification-code delivery: bookings enqueue onto the async worker,
	// which hands payloads to the email sender.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	sender := &notification.LogEmailSender{Logger: logger}
	cron.InitVerificationWorker(sender)

	// Services.
	service := &bookingSvc.DefaultBookingService{
		Repo:     repo,
		Gateway:  gateway,
		Notifier: &notification.QueueSender{Client: asynqClient},
		Cache:    utils.GetCacheClient(),
		Logger:   logger,
	}

	bookingHandler := handlers.NewBookingHandler(service, logger)

	routes.RegisterRoutes(router, bookingHandler)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
