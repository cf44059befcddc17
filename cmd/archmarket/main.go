package main

import (
	"context"
	"log"
	"time"

	router "github.com/Renal37/archmarket/internal/app"
	"github.com/Renal37/archmarket/internal/cache"
	"github.com/Renal37/archmarket/internal/database"
	"github.com/Renal37/archmarket/internal/logger"
	"github.com/Renal37/archmarket/internal/services"
	"github.com/Renal37/archmarket/internal/utils"
	"go.uber.org/zap"
)

const (
	serviceName      = "archmarket"
	eventQueueSize   = 100
	shutdownTimeout  = 10 * time.Second
	redisPingTimeout = 2 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}
	defer logger.Log.Sync()

	db, err := database.New(ctx, config.dsn)
	if err != nil {
		log.Fatalf("Database wasn't initialized due to %s", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Migrations weren't run due to %s", err)
	}

	var counter services.OrderNumberCounter = db
	healthCheck := db.Ping

	if config.redisAddress != "" {
		redisCounter := cache.NewRedisOrderCounter(config.redisAddress, serviceName)
		defer redisCounter.Close()

		pingCtx, pingCancel := context.WithTimeout(ctx, redisPingTimeout)
		if err := redisCounter.Ping(pingCtx); err != nil {
			pingCancel()
			log.Fatalf("Redis wasn't reached due to %s", err)
		}
		pingCancel()

		counter = redisCounter
		healthCheck = func(ctx context.Context) error {
			if err := db.Ping(ctx); err != nil {
				return err
			}
			return redisCounter.Ping(ctx)
		}

		logger.Log.Info("номера заказов выдаются счетчиком Redis", zap.String("address", config.redisAddress))
	}

	jobQueueService := services.NewJobQueueService(ctx, eventQueueSize, config.eventWorkers)
	eventRecorder := services.NewOrderEventRecorder(db, jobQueueService)

	server := router.New(
		router.Config{
			Endpoint:       config.endpoint,
			RequestTimeout: config.requestTimeout,
			RateLimitRPS:   config.rateLimitRPS,
			RateLimitBurst: config.rateLimitBurst,
			HealthCheck:    healthCheck,
		},
		services.NewAuthService(db, config.adminLogins...),
		services.NewJWTService(config.authSecretKey, services.DefaultTokenTTL),
		services.NewOrderService(db, db, counter, eventRecorder, config.taxRate),
		services.NewDesignService(db),
	)

	utils.HandleTerminationProcess(func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("сервер остановлен с ошибкой", zap.Error(err))
		}
	})

	logger.Log.Info("сервер запущен",
		zap.String("address", config.endpoint),
		zap.String("taxRate", config.taxRate.String()),
	)

	if err := server.Run(); err != nil {
		logger.Log.Error("сервер завершился с ошибкой", zap.Error(err))
	}

	// Запросы завершены, дописываем журнал событий
	jobQueueService.Shutdown()
	logger.Log.Info("сервер остановлен")
}
