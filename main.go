package main

import (
	"context"
	"log"
	"time"

	"cinema-ebooking/cmd"
	"cinema-ebooking/internal/data/cache"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/wire"
	"cinema-ebooking/pkg/database"
	"cinema-ebooking/pkg/notify"
	"cinema-ebooking/pkg/utils"

	"go.uber.org/zap"
)

const drainTimeout = 10 * time.Second

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	priceCache := cache.NewNoopPriceCache()
	if config.Redis.Enabled {
		rdb, err := database.InitRedis(config.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()

		priceCache = cache.NewRedisPriceCache(rdb, config.Redis.PriceTTL, logger)
		logger.Info("Redis price cache enabled", zap.Duration("ttl", config.Redis.PriceTTL))
	}

	var notifier notify.Notifier = notify.NewLogNotifier(logger)
	if config.RabbitMQ.Enabled {
		amqpNotifier, err := notify.NewAMQPNotifier(config.RabbitMQ.URL, config.RabbitMQ.Queue, logger)
		if err != nil {
			logger.Fatal("Failed to connect to rabbitmq", zap.Error(err))
		}
		defer amqpNotifier.Close()

		notifier = amqpNotifier
		logger.Info("Email notifications go to rabbitmq", zap.String("queue", config.RabbitMQ.Queue))
	}

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, priceCache, notifier, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}

	// confirmations still in flight must reach the notifier before it closes
	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := app.Drain(drainCtx); err != nil {
		logger.Warn("Pending confirmation emails dropped", zap.Error(err))
	}
	logger.Info("Server stopped")
}
