package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"avion/config"
	"avion/models"
	"avion/services/tasks"
	"avion/utils"
)

// InitReminderWorker runs the trip-reminder worker in the background.
func InitReminderWorker() {
	logger := utils.GetLogger().Named("reminder-worker")

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeTripReminder, handleTripReminder(logger))

	go monitorRedisConnection(logger)

	go func() {
		logger.Info("Starting trip reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				break
			}
			logger.Error("Reminder worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("Reminder worker exhausted start attempts")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

func handleTripReminder(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.TripReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		// Delivery channels (push, email) plug in here; for now the
		// reminder is recorded in the application log.
		logger.Info("Trip reminder due",
			zap.String("reservationID", p.ReservationID),
			zap.String("userID", p.UserID),
			zap.String("kind", p.Kind),
			zap.String("summary", p.Summary),
			zap.String("fireDate", p.FireDate))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at
// runtime.
func monitorRedisConnection(logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
