package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/rafaelleal24/fastfood-express/docs"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/config"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/http"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/http/controllers"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/mongo"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/redis"
	"github.com/rafaelleal24/fastfood-express/internal/core/domain"
	"github.com/rafaelleal24/fastfood-express/internal/core/logger"
	"github.com/rafaelleal24/fastfood-express/internal/core/service"
)

// @title       Fast Food Express API
// @version     1.0
// @description Menu, session cart and order message composition

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func menuItems(cfg []config.MenuItemConfig) []domain.MenuItem {
	items := make([]domain.MenuItem, len(cfg))
	for i, item := range cfg {
		items[i] = domain.NewMenuItem(item.Name, domain.Amount(item.Price), item.Image)
	}
	return items
}

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	err := logger.Initialize(logger.Options{
		CollectorEndpoint: cfg.Logger.Endpoint,
		ServiceName:       cfg.Logger.ServiceName,
		IsProduction:      cfg.Logger.IsProduction,
		FilePath:          cfg.Logger.FilePath,
	})
	if err != nil {
		// logger not available yet, fall back to stderr
		fmt.Fprintln(os.Stderr, "failed to initialize logger: "+err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := cfg.Validate(); err != nil {
		logger.Fatal(ctx, "Invalid configuration", err, nil)
	}

	// initialize database connection
	mongoClient, err := mongo.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
	}
	defer mongo.Disconnect(mongoClient)
	logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// initialize rabbitmq connection
	broker, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
	}
	defer broker.Close()
	logger.Info(ctx, "Connected to RabbitMQ", map[string]any{"exchange": cfg.RabbitMQ.Exchange.Name})

	// repositories, caches and rate limiter
	database := mongoClient.Database(cfg.Mongo.Database)
	menuRepository := repository.NewMenuRepository(database)
	cartStore := redis.NewCache[domain.Cart](redisClient, cfg.Redis.KeyPrefix)
	idempotencyCache := redis.NewCache[service.IdempotencyEntry[domain.OrderMessage]](redisClient, cfg.Redis.KeyPrefix)
	rateLimiter := redis.NewRateLimiter(redisClient)

	// services
	menuService := service.NewMenuService(menuRepository)
	if _, err := menuService.Load(ctx, menuItems(cfg.Menu)); err != nil {
		logger.Fatal(ctx, "Failed to load menu", err, nil)
	}
	cartService := service.NewCartService(cartStore, menuService, cfg.Session.TTL)
	idempotencyService := service.NewIdempotencyService(idempotencyCache, cfg.Idempotency.TTL, cfg.Idempotency.PollInterval, cfg.Idempotency.PollTimeout)
	composer := domain.NewOrderComposer(cfg.Messaging.Endpoint, cfg.Messaging.Recipient, domain.LinkEncoding(cfg.Messaging.Encoding))
	orderService := service.NewOrderService(cartService, composer, broker, idempotencyService)

	// controllers
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "mongodb", Check: func(ctx context.Context) error { return mongo.HealthCheck(ctx, mongoClient) }},
		{Name: "redis", Check: redisClient.HealthCheck},
		{Name: "rabbitmq", Check: broker.HealthCheck},
	})
	router := http.NewRouter(
		healthController,
		controllers.NewMenuController(menuService),
		controllers.NewCartController(cartService),
		controllers.NewOrderController(orderService),
		controllers.NewSessionController(cartService, cfg.Session),
		rateLimiter,
		cfg.HTTP,
		cfg.Session,
	)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]any{"signal": sig.String()})
		cancel()
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	if err := router.ListenAndServe(ctx); err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := logger.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintln(os.Stderr, "logger shutdown error: "+err.Error())
	}
}
