// File: clubbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clubbook/config"
	"clubbook/cron"
	"clubbook/database"
	"clubbook/database/repository"
	"clubbook/database/repository/memory"
	"clubbook/handlers"
	"clubbook/routes"
	"clubbook/services/booking"
	"clubbook/services/schedule"
	"clubbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type repositories struct {
	slots     repository.SlotRepository
	blackouts repository.BlackoutRepository
	services  repository.ServiceRepository
	bookings  repository.BookingRepository
}

func newRepositories(logger *zap.Logger) (repositories, *mongo.Client) {
	if config.AppConfig.StoreBackend == "memory" {
		logger.Warn("Using in-memory store; data is lost on restart")
		return repositories{
			slots:     memory.NewSlotRepo(),
			blackouts: memory.NewBlackoutRepo(),
			services:  memory.NewServiceRepo(),
			bookings:  memory.NewBookingRepo(),
		}, nil
	}

	database.InitDB()
	repos := repositories{
		slots:     repository.NewMongoSlotRepo(),
		blackouts: repository.NewMongoBlackoutRepo(),
		services:  repository.NewMongoServiceRepo(),
		bookings:  repository.NewMongoBookingRepo(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for name, ensure := range map[string]func(context.Context) error{
		"slots":     repos.slots.EnsureIndexes,
		"blackouts": repos.blackouts.EnsureIndexes,
		"services":  repos.services.EnsureIndexes,
		"bookings":  repos.bookings.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			logger.Fatal("main: failed to create indexes", zap.String("collection", name), zap.Error(err))
		}
	}
	return repos, database.MongoClient
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	repos, mongoClient := newRepositories(logger)

	scheduleService := schedule.NewDefaultScheduleService(repos.slots, repos.blackouts, repos.services, repos.bookings)

	// Redis backs the booking lock and the notification queue. Without it
	// bookings still work; notifications are skipped.
	var (
		redisClient *redis.Client
		locker      booking.SlotLocker
		queue       booking.Enqueuer
		worker      *asynq.Server
	)
	if config.AppConfig.RedisAddr != "" {
		redisClient = utils.GetCacheClient()
		locker = &booking.RedisSlotLocker{Client: redisClient}

		queueClient := asynq.NewClient(cron.QueueRedisOpt())
		defer queueClient.Close()
		queue = queueClient
		worker = cron.InitBookingWorker(cron.LogNotifier{Logger: logger})
	} else {
		logger.Warn("REDIS_ADDR is empty; booking locks and notifications are disabled")
	}

	bookingService := booking.NewDefaultBookingService(repos.bookings, scheduleService, locker, queue)

	maintenance, err := cron.StartMaintenance(config.AppConfig.MigrationCron, scheduleService, logger)
	if err != nil {
		logger.Fatal("main: invalid MIGRATION_CRON", zap.String("spec", config.AppConfig.MigrationCron), zap.Error(err))
	}

	utils.StartHealthMonitor(redisClient, mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router, handlers.NewHandlerBundle(scheduleService, bookingService), config.AppConfig.MaxRequestsPerMin)

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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	<-maintenance.Stop().Done()
	if worker != nil {
		worker.Shutdown()
	}
	if mongoClient != nil {
		_ = mongoClient.Disconnect(ctx)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
