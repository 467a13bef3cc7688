// File: slotbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"

	"slotbook/config"
	"slotbook/database"
	bookingRepo "slotbook/database/repository/booking"
	providerRepo "slotbook/database/repository/provider"
	slotRepo "slotbook/database/repository/slot"
	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/routes"
	"slotbook/services/booking"
	"slotbook/services/provider"
	"slotbook/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	utils.InitLogger(cfg.Env, cfg.LogLevel)
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// MongoDB.
	mongoClient, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis (provider list cache); absence degrades to uncached reads.
	redisClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
	if err != nil {
		logger.Sugar().Warnf("main: redis unavailable, provider cache disabled: %v", err)
		redisClient = nil
	} else {
		defer func() { _ = redisClient.Close() }()
	}

	// Firebase identity verification.
	fbApp, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize firebase app: %v", err)
	}
	authClient, err := fbApp.Auth(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize firebase auth client: %v", err)
	}

	// Create the Gin router.
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo(db)
	providers := providerRepo.NewMongoProviderRepo(db)
	slots := slotRepo.NewMongoSlotRepo(db)

	// Services.
	bookingService := &booking.DefaultBookingService{Repo: bookings}
	providerService := &provider.DefaultProviderService{
		Repo:  providers,
		Slots: slots,
		Cache: redisClient,
	}

	handlerBundle := &handlers.HandlerBundle{
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Provider: handlers.NewProviderHandler(providerService),
	}

	routes.RegisterRoutes(router, authClient, handlerBundle)
	utils.StartHealthMonitor(mongoClient, redisClient)

	// Start the HTTP server.
	port := cfg.AppPort
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
