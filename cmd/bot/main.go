package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/salonberry/schedule_bot/internal/app"
	"github.com/salonberry/schedule_bot/internal/cache"
	"github.com/salonberry/schedule_bot/internal/config"
	"github.com/salonberry/schedule_bot/internal/controller"
	"github.com/salonberry/schedule_bot/internal/repository"
	"github.com/salonberry/schedule_bot/internal/service"
	"github.com/salonberry/schedule_bot/internal/timeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting schedule bot",
		"environment", cfg.Environment,
		"token_length", len(cfg.TelegramToken))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}
	logger.Info("✅ Connected to database")

	migrator, err := app.NewMigrator(pool, "migrations", logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	// Redis опционален, без него экраны рисуются каждый раз заново
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis unavailable, day images will not be cached", zap.Error(err))
			redisClient = nil
		} else {
			logger.Info("✅ Connected to Redis", zap.String("addr", cfg.RedisAddr))
		}
	}

	grid := timeline.Config{
		StartHour:  cfg.DayStartHour,
		EndHour:    cfg.DayEndHour,
		SlotHeight: cfg.SlotHeight,
	}

	appointmentRepo := repository.NewAppointmentRepository(pool)
	appointmentService := service.NewAppointmentService(appointmentRepo, grid, logger)
	imageCache := cache.NewImageCache(redisClient, logger)

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(b, appointmentService, imageCache, grid, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	scheduler := app.NewScheduler(appointmentService, botController.RefreshOpenDays, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	logger.Info("✅ Bot is running, press Ctrl+C to stop")
	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot shut down")
}
